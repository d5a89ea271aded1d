package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(recommendationsCounter)
	RecordRecommendation(4)
	require.Equal(t, before+1, testutil.ToFloat64(recommendationsCounter))
	require.Equal(t, 4.0, testutil.ToFloat64(resultSizeGauge))
}

func TestRecordTrendOverlay(t *testing.T) {
	before := testutil.ToFloat64(trendOverlayCounter)
	RecordTrendOverlay()
	RecordTrendOverlay()
	require.Equal(t, before+2, testutil.ToFloat64(trendOverlayCounter))
}
