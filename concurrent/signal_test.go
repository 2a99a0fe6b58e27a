//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package concurrent

import (
	"testing"
	"time"
)

func TestSignallerSendReceive(t *testing.T) {
	s := NewSignaller()
	l, err := s.Listener()
	if err != nil {
		t.Fatalf("Listener: %v", err)
	}
	defer l.Close()

	go func() {
		if err := s.Send(42); err != nil {
			t.Errorf("Send: %v", err)
		}
	}()

	select {
	case sig := <-l.Signal():
		if sig.(int) != 42 {
			t.Fatalf("got signal %v, want 42", sig)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for signal")
	}
}

func TestSignallerMultipleListeners(t *testing.T) {
	s := NewSignaller()
	l1, err := s.Listener()
	if err != nil {
		t.Fatalf("Listener: %v", err)
	}
	defer l1.Close()
	l2, err := s.Listener()
	if err != nil {
		t.Fatalf("Listener: %v", err)
	}
	defer l2.Close()

	go func() {
		_ = s.Send("broadcast")
	}()

	for _, l := range []*Listener{l1, l2} {
		select {
		case sig := <-l.Signal():
			if sig.(string) != "broadcast" {
				t.Fatalf("got signal %v, want broadcast", sig)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for signal")
		}
	}
}

func TestSignallerRetire(t *testing.T) {
	s := NewSignaller()
	s.Retire()
	if err := s.Send("x"); err != ErrSigInactive {
		t.Fatalf("Send after Retire: got %v, want ErrSigInactive", err)
	}
	if _, err := s.Listener(); err != ErrSigInactive {
		t.Fatalf("Listener after Retire: got %v, want ErrSigInactive", err)
	}
}

func TestListenerCloseUnknown(t *testing.T) {
	s := NewSignaller()
	l, err := s.Listener()
	if err != nil {
		t.Fatalf("Listener: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := l.Close(); err != ErrSigNoListener {
		t.Fatalf("second Close: got %v, want ErrSigNoListener", err)
	}
}
