// Package export writes payment ledger snapshots to a gocloud.dev blob bucket.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"
	"mescontacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by export.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const keyTimeLayout = "20060102T150405.000Z"

var csvHeader = []string{
	"id",
	"post_id",
	"amount_cents",
	"amount",
	"method",
	"duration_days",
	"status",
	"payment_date",
	"recorded_by",
	"external_reference",
	"notes",
	"created_at",
}

// Params holds dependencies for the exporter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

type ledgerExporter struct {
	bucket *blob.Bucket
	prefix string
	clock  service.Clock
	logger *slog.Logger
}

// NewLedgerExporter opens the configured bucket and closes it on shutdown.
func NewLedgerExporter(params Params) (service.LedgerExporter, error) {
	cfg := params.Config.Export

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open export bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newLedgerExporter(bucket, cfg.Prefix, params.Clock, params.Logger), nil
}

func newLedgerExporter(bucket *blob.Bucket, prefix string, clock service.Clock, logger *slog.Logger) *ledgerExporter {
	return &ledgerExporter{
		bucket: bucket,
		prefix: prefix,
		clock:  clock,
		logger: logger,
	}
}

// Export implements service.LedgerExporter.
func (e *ledgerExporter) Export(ctx context.Context, payments []*entity.Payment) (string, error) {
	key := e.objectKey()

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := e.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: "text/csv",
		IfNotExist:  true,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open export writer")
	}

	if err := writeCSV(w, payments); err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		return "", err
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize export")
	}

	e.logger.InfoContext(ctx, "Ledger exported",
		slog.String("key", key),
		slog.Int("count", len(payments)),
	)

	return key, nil
}

// objectKey is unique per call. The random suffix keeps exports taken
// within the same millisecond apart.
func (e *ledgerExporter) objectKey() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return e.prefix + "payments-" + e.clock().UTC().Format(keyTimeLayout) + "-" + suffix + ".csv"
}

func writeCSV(w *blob.Writer, payments []*entity.Payment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "failed to write export header")
	}

	for _, p := range payments {
		if err := cw.Write(paymentRow(p)); err != nil {
			return errors.Wrap(err, "failed to write export row")
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "failed to flush export")
}

func paymentRow(p *entity.Payment) []string {
	return []string{
		p.ID.String(),
		p.PostID.String(),
		strconv.FormatInt(p.Amount, 10),
		formatCents(p.Amount),
		p.Method.String(),
		strconv.Itoa(p.DurationDays),
		p.Status.String(),
		p.PaymentDate.UTC().Format(time.RFC3339),
		p.RecordedBy.String(),
		p.ExternalReference,
		p.DisplayNotes(),
		p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// formatCents renders integer cents as dollars, e.g. 4999 -> "49.99".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
