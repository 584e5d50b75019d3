package main

import (
	"encoding/json"
	"fmt"
	"io"

	"walletportal/internal/delivery/presenter"
	"walletportal/internal/domain/entity"
	"walletportal/internal/errors"
	"walletportal/internal/util"

	"github.com/fatih/color"
)

// printer writes results to out and prompts and failures to errOut.
type printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool

	address *color.Color
	heading *color.Color
	failure *color.Color
	success *color.Color
	muted   *color.Color
}

func newPrinter(out, errOut io.Writer, format string) (*printer, error) {
	p := &printer{
		out:     out,
		errOut:  errOut,
		address: color.New(color.FgCyan),
		heading: color.New(color.Bold),
		failure: color.New(color.FgRed),
		success: color.New(color.FgGreen),
		muted:   color.New(color.Faint),
	}

	switch format {
	case "", "text":
	case "json":
		p.json = true
	default:
		return nil, errors.Errorf("unknown output format %q, want text or json", format)
	}

	return p, nil
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

// Prompt asks for one line of input.
func (p *printer) Prompt(label string) {
	fmt.Fprintf(p.errOut, "%s: ", label)
}

func (p *printer) Info(format string, args ...any) {
	fmt.Fprintf(p.errOut, format+"\n", args...)
}

func (p *printer) Success(format string, args ...any) {
	p.success.Fprintf(p.errOut, format+"\n", args...)
}

func (p *printer) Failure(message string) {
	p.failure.Fprintln(p.errOut, message)
}

func (p *printer) Wallet(w *entity.WalletInfo) error {
	if p.json {
		return p.encode(presenter.Wallet(w))
	}
	if w == nil {
		p.Info("No wallet")

		return nil
	}

	p.heading.Fprintln(p.out, "Wallet")
	p.field("Address", util.FormatAddress(w.Address), p.address)
	if w.HasSmartWallet() {
		p.field("Smart wallet", util.FormatAddress(*w.SmartWalletAddress), p.address)
	}
	p.field("Created", util.FormatDate(w.CreatedAt), nil)

	if len(w.Profiles) == 0 {
		p.field("Profiles", "none", p.muted)

		return nil
	}
	fmt.Fprintln(p.out, "  Profiles:")
	for _, profile := range w.Profiles {
		fmt.Fprintf(p.out, "    - %-8s %s\n", profile.Type, profileLabel(profile))
	}

	return nil
}

func (p *printer) Directory(s entity.DirectoryState) error {
	if p.json {
		return p.encode(presenter.Directory(s))
	}

	more := "last page"
	if s.Pagination.HasMore {
		more = "more available"
	}
	p.heading.Fprintf(p.out, "Users (page %d, %d per page, %s)\n", s.Pagination.Page, s.Pagination.Limit, more)

	if len(s.Wallets) == 0 {
		p.muted.Fprintln(p.out, "  No users")

		return nil
	}
	for i, w := range s.Wallets {
		fmt.Fprintf(p.out, "%4d. ", i+1)
		p.address.Fprint(p.out, util.FormatAddress(w.Address))
		fmt.Fprintf(p.out, "  created %s", util.FormatDate(w.CreatedAt))
		if len(w.Profiles) > 0 {
			fmt.Fprintf(p.out, "  %s %s", w.Profiles[0].Type, profileLabel(w.Profiles[0]))
		}
		fmt.Fprintln(p.out)
	}

	return nil
}

func (p *printer) field(name, value string, c *color.Color) {
	fmt.Fprintf(p.out, "  %-14s", name+":")
	if c == nil {
		fmt.Fprintln(p.out, value)

		return
	}
	c.Fprintln(p.out, value)
}

// profileLabel picks the most readable identifier of a linked identity.
func profileLabel(profile entity.Profile) string {
	switch {
	case profile.Email != nil && *profile.Email != "":
		return *profile.Email
	case profile.Name != nil && *profile.Name != "":
		return *profile.Name
	default:
		return util.FormatOptional(&profile.ID)
	}
}
