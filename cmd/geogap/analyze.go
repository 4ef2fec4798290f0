package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/geogap"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	req := geogap.AnalysisRequest{
		Question:      c.Question,
		TargetURL:     c.Target,
		ReferenceURLs: c.References,
	}

	result, err := deps.Analysis.Analyze(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geogap.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(deps.Stdout, geogap.FormatReport(result))
	return nil
}
