package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keeperforge/keeper-core/internal/pkg/clock"
)

func TestReal_Now(t *testing.T) {
	clk := clock.New()

	before := time.Now()
	now := clk.Now()

	assert.False(t, now.Before(before))
}

func TestFixed_NowIsStable(t *testing.T) {
	instant := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	clk := &clock.Fixed{Time: instant}

	assert.Equal(t, instant, clk.Now())
	assert.Equal(t, instant, clk.Now())
}
