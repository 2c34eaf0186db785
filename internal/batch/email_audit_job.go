package batch

import (
	"context"
	"customer-service/internal/domain/customer"
	"fmt"
	"log/slog"
	"time"
)

// EmailAuditJob scans every customer and reports normalized email addresses
// shared by more than one record. The unique index makes such duplicates
// impossible under normal operation; the job exists to detect records written
// before the index existed or through out-of-band changes to the table.
type EmailAuditJob struct {
	customerService customer.CustomerService
	logger          *slog.Logger
}

func NewEmailAuditJob(customerSvc customer.CustomerService, logger *slog.Logger) *EmailAuditJob {
	if customerSvc == nil || logger == nil {
		panic("EmailAuditJob dependencies cannot be nil")
	}
	return &EmailAuditJob{
		customerService: customerSvc,
		logger:          logger.With("job", "EmailAudit"),
	}
}

func (j *EmailAuditJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting duplicate email audit job.")

	customers, err := j.customerService.ListCustomers(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list customers, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run audit, failed to list customers: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched customers for audit.", slog.Int("count", len(customers)))

	owners := make(map[string][]string)
	for _, cust := range customers {
		normalized := customer.NormalizeEmail(cust.EmailAddress)
		owners[normalized] = append(owners[normalized], cust.ID.String())
	}

	duplicateCount := 0
	for email, ids := range owners {
		if len(ids) > 1 {
			duplicateCount++
			j.logger.WarnContext(ctx, "Duplicate normalized email detected.",
				slog.String("email", email),
				slog.Int("records", len(ids)),
				slog.Any("customerIDs", ids),
			)
		}
	}

	summaryLog := j.logger.With(
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("customers_scanned", len(customers)),
		slog.Int("duplicate_emails_found", duplicateCount),
	)
	if duplicateCount > 0 {
		summaryLog.WarnContext(ctx, "Duplicate email audit job finished with findings.")
		return fmt.Errorf("audit found %d duplicated email addresses", duplicateCount)
	}
	summaryLog.InfoContext(ctx, "Duplicate email audit job finished successfully.")
	return nil
}
