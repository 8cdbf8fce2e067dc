// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrStartupConnection is returned by [Sequencer.Run] when the database
	// connection fails and the sequencer is configured to exit on failure.
	ErrStartupConnection = errors.New("startup connection failed")

	// ErrBuildingRoutes is returned when the router cannot be built over an
	// established connection.
	ErrBuildingRoutes = errors.New("error building routes")

	// ErrListening is returned when the listening socket cannot be opened.
	ErrListening = errors.New("error opening listener")

	errSequencerStarted = errors.New("sequencer already started")
)
