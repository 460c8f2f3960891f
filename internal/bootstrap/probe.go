package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/mongo-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe periodically checks database connectivity and exports the result
// as docgw_database_up.
type Probe struct {
	pinger  Pinger
	timeout time.Duration
}

func NewProbe(pinger Pinger) *Probe {
	return &Probe{pinger: pinger, timeout: 2 * time.Second}
}

// Run performs one check. It returns the ping error, if any.
func (p *Probe) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err := p.pinger.Ping(ctx)
	metrics.SetDatabaseUp(err == nil)
	if err != nil {
		log.Printf("[probe] database unreachable: %v", err)
		return err
	}
	log.Println("[probe] database reachable")
	return nil
}

// StartProbe schedules Run on schedule, which may be a 5- or 6-field cron
// expression or a descriptor such as "@every 30s". It exports
// docgw_database_up and runs one check before returning so the gauge never
// reports a stale zero. The caller stops the returned scheduler.
func StartProbe(schedule string, p *Probe) (*cron.Cron, error) {
	return startProbe(schedule, p, prometheus.DefaultRegisterer)
}

func startProbe(schedule string, p *Probe, reg prometheus.Registerer) (*cron.Cron, error) {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	c := cron.New(cron.WithParser(parser))

	if _, err := c.AddFunc(schedule, func() { _ = p.Run() }); err != nil {
		return nil, fmt.Errorf("invalid PROBE_SCHEDULE %q: %w", schedule, err)
	}

	if err := metrics.RegisterDatabaseUp(reg); err != nil {
		return nil, fmt.Errorf("register probe gauge: %w", err)
	}

	log.Printf("Connectivity probe scheduled (%s)", schedule)
	_ = p.Run()
	c.Start()
	return c, nil
}
