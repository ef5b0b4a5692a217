//go:build headless

package main

import "github.com/antimony-labs/chladni-sim"

type liveView struct{}

func newLiveView(s *chladni.Solver) *liveView { return nil }

func (v *liveView) pump() {}

func (v *liveView) run() {}
