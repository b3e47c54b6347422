package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("studio-test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/v1/booking/bookings", 201, 10*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/booking/bookings", 201, 20*time.Millisecond)
	m.IncBookingsCreated()
	m.IncBookingConflicts()
	m.IncCouponsRedeemed()
	m.SetDBPoolStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/booking/bookings", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.couponsRedeemed))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbIdle))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("select", "ok", time.Millisecond)
		m.SetDBPoolStats(sql.DBStats{})
		m.IncBookingsCreated()
		m.IncBookingConflicts()
		m.IncOrdersCreated()
		m.IncCouponsRedeemed()
	})
}
