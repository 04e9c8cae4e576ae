// Package main is the entry point for the Complaint Center Service.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	complaintcenter "github.com/kart-io/complaint-center/internal/complaint-center"
)

func main() {
	complaintcenter.NewApp().Run()
}
