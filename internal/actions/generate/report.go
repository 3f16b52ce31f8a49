// Package generate holds the gen command family: the scan-validate-emit
// pipeline behind `dg gen run`, plus its check-only and watch variants.
package generate

// RunReport summarizes one generation run for display.
type RunReport struct {
	RunID    string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Packages int      `json:"packages" yaml:"packages"`
	Commands int      `json:"commands" yaml:"commands"`
	Written  []string `json:"written,omitempty" yaml:"written,omitempty"`
	Skipped  []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	DryRun   bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// CheckReport summarizes a validation-only pass.
type CheckReport struct {
	Packages int  `json:"packages" yaml:"packages"`
	Commands int  `json:"commands" yaml:"commands"`
	Clean    bool `json:"clean" yaml:"clean"`
}
