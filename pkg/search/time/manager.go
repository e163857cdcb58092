// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package time implements the time managers used to decide how long a
// search may run for.
package time

import (
	"time"

	"shardchess.dev/x/core/pkg/piece"
)

// Manager represents a time manager.
type Manager interface {
	// GetDeadline calculates the optimal amount of time to be used
	// and sets a deadline internally for the search's end.
	GetDeadline()

	// ExtendDeadline is called when the engine want's to extend the
	// search's length. A deadline extension may fail.
	ExtendDeadline()

	// Expired reports if the search deadline has been crossed.
	Expired() bool

	// Elapsed returns how long the manager has been running.
	Elapsed() time.Duration

	// Budget returns the total time the manager was allotted.
	Budget() time.Duration
}

// NormalManager is the standard time manager. It holds the wtime, btime,
// winc, binc, and movestogo provided by the GUI; its deadline is one
// twentieth of the side to move's remaining time, and the increments
// and movestogo do not enter that calculation.
type NormalManager struct {
	Us piece.Color // side to move

	Time, Increment [piece.ColorN]int
	MovesToGo       int // moves to next time control

	start    time.Time
	deadline time.Time // search end deadline
}

// compile time check that NormalManager implements Manager
var _ Manager = (*NormalManager)(nil)

func (c *NormalManager) GetDeadline() {
	c.start = time.Now()
	c.deadline = c.start.Add((time.Duration(c.Time[c.Us]) * time.Millisecond) / 20)
}

func (c *NormalManager) ExtendDeadline() {
	c.deadline = c.deadline.Add((time.Duration(c.Time[c.Us]) * time.Millisecond) / 30)
}

func (c *NormalManager) Expired() bool {
	return time.Now().After(c.deadline)
}

func (c *NormalManager) Elapsed() time.Duration {
	return time.Since(c.start)
}

func (c *NormalManager) Budget() time.Duration {
	return time.Duration(c.Time[c.Us]) * time.Millisecond
}

// MoveManager is the time manager used when the gui wants to time a search
// by move-time. Extending it's deadline is not possible.
type MoveManager struct {
	Duration int // milliseconds

	start    time.Time
	deadline time.Time
}

// compile time check that MoveManager implements Manager
var _ Manager = (*MoveManager)(nil)

func (c *MoveManager) GetDeadline() {
	c.start = time.Now()
	c.deadline = c.start.Add(time.Duration(c.Duration) * time.Millisecond)
}

func (c *MoveManager) ExtendDeadline() {
	// can't extend deadline: search time is fixed
}

func (c *MoveManager) Expired() bool {
	return time.Now().After(c.deadline)
}

func (c *MoveManager) Elapsed() time.Duration {
	return time.Since(c.start)
}

func (c *MoveManager) Budget() time.Duration {
	return time.Duration(c.Duration) * time.Millisecond
}

// InfiniteManager never expires on its own; the search runs until it
// receives an external stop signal.
type InfiniteManager struct {
	start time.Time
}

// compile time check that InfiniteManager implements Manager
var _ Manager = (*InfiniteManager)(nil)

func (c *InfiniteManager) GetDeadline()    { c.start = time.Now() }
func (c *InfiniteManager) ExtendDeadline() {}
func (c *InfiniteManager) Expired() bool   { return false }
func (c *InfiniteManager) Elapsed() time.Duration {
	return time.Since(c.start)
}
func (c *InfiniteManager) Budget() time.Duration {
	return time.Duration(1<<63 - 1)
}
