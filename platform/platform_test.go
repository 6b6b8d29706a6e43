// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arch    string
		want    string
		wantErr bool
	}{
		{
			name: "x86_64 is already canonical",
			arch: "x86_64",
			want: ArchX8664,
		},
		{
			name: "amd64 maps to x86_64",
			arch: "amd64",
			want: ArchX8664,
		},
		{
			name: "aarch64 is already canonical",
			arch: "aarch64",
			want: ArchAarch64,
		},
		{
			name: "arm64 maps to aarch64",
			arch: "arm64",
			want: ArchAarch64,
		},
		{
			name: "substring match is enough",
			arch: "arm64v8",
			want: ArchAarch64,
		},
		{
			name: "docker style platform string",
			arch: "linux/amd64",
			want: ArchX8664,
		},
		{
			name:    "unknown architecture fails",
			arch:    "mips",
			wantErr: true,
		},
		{
			name:    "empty string fails",
			arch:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeArch(tt.arch)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownArchitecture)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
