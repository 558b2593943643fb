package main

import (
	"fmt"

	"github.com/fwojciec/torrench"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	for i, cat := range torrench.Categories {
		fmt.Fprintf(deps.Stdout, "[%d] %s  %s\n", i, cat.Name, cat.Code)
	}
	return nil
}
