package main

import (
	geogaphttp "github.com/fwojciec/geogap/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := geogaphttp.NewServer(deps.Analysis, deps.Logger, c.CORSOrigins...)
	return srv.ListenAndServe(deps.Ctx, c.Addr)
}
