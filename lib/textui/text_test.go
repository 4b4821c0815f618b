// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package textui_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/go/ordered/lib/textui"
)

type itemCount int64

func TestFprintf(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	textui.Fprintf(&out, "%d", 12345)
	assert.Equal(t, "12,345", out.String())
}

func TestHumanized(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12,345", fmt.Sprint(textui.Humanized(12345)))
	assert.Equal(t, "12,345  ", fmt.Sprintf("%-8d", textui.Humanized(12345)))

	// Locale-aware grouping only applies to builtin numeric types;
	// defined types format as their underlying kind, ungrouped.
	cnt := itemCount(345243543)
	assert.Equal(t, "345243543", fmt.Sprintf("%d", textui.Humanized(cnt)))
	assert.Equal(t, "345,243,543", fmt.Sprintf("%d", textui.Humanized(int64(cnt))))
}

func TestPortion(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "100% (0/0)", fmt.Sprint(textui.Portion[int]{}))
	assert.Equal(t, "0% (1/12,345)", fmt.Sprint(textui.Portion[int]{N: 1, D: 12345}))
	assert.Equal(t, "100% (0/0)", fmt.Sprint(textui.Portion[itemCount]{}))
	assert.Equal(t, "0% (1/12,345)", fmt.Sprint(textui.Portion[itemCount]{N: 1, D: 12345}))
}

func TestMetric(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "3B", fmt.Sprint(textui.Metric(3, "B")))
	assert.Equal(t, "1.5ks", fmt.Sprint(textui.Metric(1500, "s")))
	assert.Equal(t, "150ms", fmt.Sprint(textui.Metric(0.15, "s")))
}

func TestIEC(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12B", fmt.Sprint(textui.IEC(12, "B")))
	assert.Equal(t, "1KiB", fmt.Sprint(textui.IEC(1024, "B")))
	assert.Equal(t, "1.5KiB", fmt.Sprint(textui.IEC(1536, "B")))
}
