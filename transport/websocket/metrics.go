package websocket

import "github.com/prometheus/client_golang/prometheus"

var (
	wsConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "matchplay_ws_connections",
			Help: "Current number of active websocket connections.",
		},
	)
	wsRooms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "matchplay_ws_rooms",
			Help: "Current number of websocket rooms with members.",
		},
	)
	wsMessagesDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matchplay_ws_messages_delivered_total",
			Help: "Total websocket messages delivered to clients.",
		},
	)
	wsEventsDispatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchplay_ws_events_dispatched_total",
			Help: "Total inbound events dispatched, by event name.",
		},
		[]string{"event"},
	)
)

func init() {
	prometheus.MustRegister(wsConnections, wsRooms, wsMessagesDelivered, wsEventsDispatched)
}

func incConnections() {
	wsConnections.Inc()
}

func decConnections() {
	wsConnections.Dec()
}

func setRooms(count int) {
	wsRooms.Set(float64(count))
}

func countDelivered(count int) {
	wsMessagesDelivered.Add(float64(count))
}

func countDispatched(event string) {
	wsEventsDispatched.WithLabelValues(event).Inc()
}
