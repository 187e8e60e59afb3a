package service

import (
	"github.com/MKhiriev/cidr-viewer/internal/adapter"
)

type ClientServices struct {
	HealthMonitor HealthMonitor
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		HealthMonitor: NewHealthMonitor(serverAdapter),
	}
}
