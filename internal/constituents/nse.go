package constituents

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/domain/models"
)

// symbolColumn is the literal header of the ticker column in the
// archives CSV. If the column is absent the file format has changed and
// the fallback list is used.
const symbolColumn = "Symbol"

// csvFetcher is the slice of the upstream client this provider needs;
// tests substitute a stub.
type csvFetcher interface {
	ConstituentCSV(ctx context.Context) ([]byte, error)
}

// nseProvider downloads the NIFTY 50 constituent CSV from the exchange
// archives.
type nseProvider struct {
	client csvFetcher
}

// NewNSEProvider builds the remote-backed NIFTY 50 provider.
func NewNSEProvider(client csvFetcher) Provider {
	return &nseProvider{client: client}
}

func (p *nseProvider) Index() models.IndexKind { return models.IndexNifty50 }

// Fetch downloads and parses the constituent CSV.
//
// Returns SourceRemote symbols on success; on any failure the error is
// classified (SourceUnavailable for transport, SchemaMismatch for a
// missing column or unparsable document) and the resolver falls back.
func (p *nseProvider) Fetch(ctx context.Context) ([]string, models.Source, error) {
	body, err := p.client.ConstituentCSV(ctx)
	if err != nil {
		return nil, "", err
	}

	symbols, err := parseSymbolColumn(body)
	if err != nil {
		return nil, "", err
	}
	return symbols, models.SourceRemote, nil
}

// Fallback returns a small known-good subset of NIFTY 50 constituents.
func (p *nseProvider) Fallback() []string {
	return []string{"RELIANCE", "HDFCBANK", "TCS", "ICICIBANK", "INFY", "KOTAKBANK", "HINDUNILVR"}
}

// parseSymbolColumn extracts the Symbol column from a tabular CSV body.
//
// Behavior:
//   - locates the column by its exact header name.
//   - tolerates variable trailing columns on data rows, but requires the
//     symbol cell to be present and non-empty.
//   - returns SchemaMismatch when the header or the column is missing,
//     or when the document cannot be read as CSV at all.
func parseSymbolColumn(body []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, faults.New(faults.SchemaMismatch, fmt.Errorf("read header: %w", err))
	}

	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == symbolColumn {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, faults.Newf(faults.SchemaMismatch, "column %q not found in header", symbolColumn)
	}

	var symbols []string
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, faults.New(faults.SchemaMismatch, fmt.Errorf("read line after %d: %w", line, err))
		}
		line++

		if col >= len(rec) {
			return nil, faults.Newf(faults.SchemaMismatch, "line %d: missing symbol cell", line)
		}
		s := strings.ToUpper(strings.TrimSpace(rec[col]))
		if s == "" {
			return nil, faults.Newf(faults.SchemaMismatch, "line %d: empty symbol", line)
		}
		symbols = append(symbols, s)
	}

	if len(symbols) == 0 {
		return nil, faults.Newf(faults.SchemaMismatch, "document has no data rows")
	}
	return symbols, nil
}
