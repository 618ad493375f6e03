package env

import (
	"os"
)

// PodName example: k8ssta-marketfront-6868d88fbd-bz8zv, falls back to the host name
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, _ := os.Hostname()
	return host
}
