package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/cafelist/api"
	"github.com/vcrobe/cafelist/cafelist"
	"github.com/vcrobe/cafelist/config"
	"github.com/vcrobe/cafelist/dialogs"
	"github.com/vcrobe/cafelist/dom"
	"github.com/vcrobe/cafelist/events"
)

// page is an in-memory stand-in for the cafe list page.
type page struct {
	cfg    config.Config
	doc    *dom.Memory
	client *cafelist.Client
}

func newPage(cfg config.Config, out io.Writer, log *zap.Logger) *page {
	if log == nil {
		log = zap.NewNop()
	}
	els := cfg.Elements
	doc := dom.NewMemory(els.List, els.RandomButton, els.SearchForm, els.SearchInput)

	cafes := api.New(cfg.API.BaseURL, &http.Client{}, api.WithLogger(log))
	client := cafelist.New(doc, dialogs.NewTerminal(out), cafes,
		cafelist.WithConfig(cfg),
		cafelist.WithLogger(log),
	)
	return &page{cfg: cfg, doc: doc, client: client}
}

// printList writes the list container's HTML, if any flow wrote to it.
func (p *page) printList(w io.Writer) error {
	if p.doc.Writes() == 0 {
		return nil
	}
	content, err := p.doc.Content(p.cfg.Elements.List)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, content)
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// runList renders every cafe
func runList(cmd *cobra.Command, args []string) error {
	p := newPage(cfg, cmd.OutOrStdout(), logger)
	p.client.LoadAllCafes(commandContext(cmd))
	return p.printList(cmd.OutOrStdout())
}

// runSearch submits the search form with the joined args
func runSearch(cmd *cobra.Command, args []string) error {
	p := newPage(cfg, cmd.OutOrStdout(), logger)

	if err := p.doc.SetValue(p.cfg.Elements.SearchInput, strings.Join(args, " ")); err != nil {
		return err
	}
	p.client.SubmitSearch(commandContext(cmd), events.NewSynthetic("submit"))

	return p.printList(cmd.OutOrStdout())
}

// runRandom shows the random pick alert
func runRandom(cmd *cobra.Command, args []string) error {
	p := newPage(cfg, cmd.OutOrStdout(), logger)
	p.client.RequestRandomCafe(commandContext(cmd))
	return nil
}
