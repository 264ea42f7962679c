package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cykrypt/registration/client"
)

var version = "dev"

// app holds the collaborators commands depend on.
type app struct {
	now       func() time.Time
	transport func(endpoint string) client.Transport
}

func defaultApp() *app {
	return &app{
		now: time.Now,
		transport: func(endpoint string) client.Transport {
			return client.NewHTTPTransport(endpoint)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "regctl",
		Short:         "Validate and submit Cykrypt team registrations",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newRegisterCmd(a))
	return root
}
