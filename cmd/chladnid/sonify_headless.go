//go:build headless

package main

import "errors"

type toneOutput struct{}

func newToneOutput(freqHz float64) (*toneOutput, error) {
	return nil, errors.New("sonify unavailable in a headless build")
}

func (t *toneOutput) Close() {}
