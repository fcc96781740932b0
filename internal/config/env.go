// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a list of KEY=value pairs in the form
// returned by os.Environ. Variable names come from the `env` and `envPrefix`
// tags of [StructuredConfig].
//
// Every variable that fails to convert is reported as its own
// [ErrInvalidEnv] so that one run shows all of them.
func parseEnv(cfg *StructuredConfig, environ []string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)})
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if !errors.As(err, &aggErr) {
		return fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}

	errs := make([]error, 0, len(aggErr.Errors))
	for _, e := range aggErr.Errors {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidEnv, e))
	}
	return errors.Join(errs...)
}
