package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrymomot/authenticator/modules/account"
	"github.com/dmitrymomot/authenticator/pkg/qrcode"
	"github.com/dmitrymomot/authenticator/pkg/totp"
)

// RunAddAccount stores a new account and prints its id.
func RunAddAccount(ctx context.Context, w io.Writer, svc *account.Service, userID string, in account.CreateInput) error {
	acc, err := svc.Create(ctx, userID, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, acc.ID)
	return err
}

// RunListAccounts prints the user's accounts matching query, one per line.
func RunListAccounts(ctx context.Context, w io.Writer, svc *account.Service, userID, query string) error {
	accounts, err := svc.List(ctx, userID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tISSUER\tNAME\tPERIOD\tTAGS")
	for _, acc := range account.Filter(accounts, query) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			acc.ID, acc.Issuer, acc.Name, acc.Period, strings.Join(acc.Tags, ","))
	}
	return tw.Flush()
}

// RunCodes prints the current code of every matching account, all computed at now.
// Accounts whose secret is unusable show the placeholder.
func RunCodes(ctx context.Context, w io.Writer, svc *account.Service, userID, query string, now time.Time) error {
	codes, err := svc.Codes(ctx, userID, now)
	if err != nil {
		return err
	}

	visible := make(map[string]bool)
	for _, acc := range filterCodes(codes, query) {
		visible[acc.ID] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ISSUER\tNAME\tCODE\tREMAINING")
	for _, c := range codes {
		if !visible[c.Account.ID] {
			continue
		}
		code := c.Current
		if c.Err != nil {
			code = totp.Placeholder
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%ds\n", c.Account.Issuer, c.Account.Name, code, c.TimeRemaining)
	}
	return tw.Flush()
}

// RunDeleteAccount removes one account.
func RunDeleteAccount(ctx context.Context, w io.Writer, svc *account.Service, userID, id string) error {
	if err := svc.Delete(ctx, userID, id); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "deleted %s\n", id)
	return err
}

// RunExportAccount prints the account's otpauth URI followed by its QR code.
func RunExportAccount(ctx context.Context, w io.Writer, svc *account.Service, userID, id string) error {
	uri, err := svc.ExportURI(ctx, userID, id)
	if err != nil {
		return err
	}
	qr, err := qrcode.GenerateTerminal(uri)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s", uri, qr)
	return err
}

func filterCodes(codes []account.Code, query string) []account.Account {
	accounts := make([]account.Account, len(codes))
	for i, c := range codes {
		accounts[i] = c.Account
	}
	return account.Filter(accounts, query)
}
