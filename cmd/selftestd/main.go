package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/hwsign/selftest/pkg/platform"
	"github.com/hwsign/selftest/pkg/run"
)

func init() {
	platform.SetupFlags()
}

func main() {
	flag.Parse()

	conf := platform.NewConfig()
	p := conf.MustBringUp()
	h := conf.NewHarness(p)

	runner := run.NewRunner().HandleSignals()
	runner.Go(run.NamedRun("harness", h))
	runner.Go(p.Pumps()...)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
