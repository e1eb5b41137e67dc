package sheets

import (
	"context"
	"errors"
	"fmt"

	"Backend-Masons-Leads/src/config"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// ValuesAPI is the slice of the spreadsheet values API the service needs.
type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
	Append(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error
}

type googleValues struct {
	svc *gsheets.Service
}

// NewGoogleValues authenticates as the configured service account.
func NewGoogleValues(ctx context.Context, cfg config.GoogleConfig) (ValuesAPI, error) {
	if cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("google service account credentials not configured")
	}

	jwtCfg := &oauthjwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{gsheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &googleValues{svc: svc}, nil
}

func (g *googleValues) Get(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *googleValues) Append(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error {
	_, err := g.svc.Spreadsheets.Values.
		Append(spreadsheetID, writeRange, &gsheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
