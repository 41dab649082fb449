/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cputime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMicros(t *testing.T) {
	tests := []struct {
		name string
		sec  int64
		nsec int64
		want int64
	}{
		{name: "zero", sec: 0, nsec: 0, want: 0},
		{name: "whole seconds", sec: 3, nsec: 0, want: 3000000},
		{name: "sub-microsecond truncates to zero", sec: 0, nsec: 999, want: 0},
		{name: "remainder truncates", sec: 0, nsec: 1999, want: 1},
		{name: "seconds plus nanoseconds", sec: 2, nsec: 500000500, want: 2500000},
		{name: "large reading", sec: 86400, nsec: 123456789, want: 86400123456},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Micros(tt.sec, tt.nsec))
		})
	}
}

func TestNow(t *testing.T) {
	got, err := Now()
	if errors.Is(err, ErrUnsupported) {
		t.Skip("no process CPU-time clock on this platform")
	}
	require.NoError(t, err)
	require.GreaterOrEqual(t, got, int64(0))
}

func TestNowMonotonic(t *testing.T) {
	first, err := Now()
	if errors.Is(err, ErrUnsupported) {
		t.Skip("no process CPU-time clock on this platform")
	}
	require.NoError(t, err)
	// burn some CPU so the second reading has something to accumulate
	sum := 0
	for i := 0; i < 1000000; i++ {
		sum += i
	}
	_ = sum
	second, err := Now()
	require.NoError(t, err)
	require.GreaterOrEqual(t, second, first)
}
