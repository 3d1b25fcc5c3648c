package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const orderSequenceName = "order"

// ConversionResult is returned by a successful (or idempotent) conversion.
type ConversionResult struct {
	OrderID          string
	OrderNumber      string
	AlreadyConverted bool
	StockUpdated     bool
}

// Eligibility answers whether a quotation could be converted right now.
type Eligibility struct {
	Eligible        bool
	Reason          string
	ExistingOrderID string
	Shortages       []domainerr.Shortage
}

// IOrderConversionUseCase turns approved quotations into orders.
type IOrderConversionUseCase interface {
	ConvertQuotationToOrder(ctx context.Context, quotationID string, caller entities.Caller) (ConversionResult, error)
	CheckEligibility(ctx context.Context, quotationID string, caller entities.Caller) (Eligibility, error)
}

type OrderConversionUseCase struct {
	uow        interfaces.IUnitOfWork
	quotations interfaces.IQuotationRepository
	orders     interfaces.IOrderRepository
	sequences  interfaces.ISequenceGenerator
	notifier   interfaces.INotifier
	ledger     *StockLedger
	guard      *VersionGuard
	settings   Settings
	log        *logrus.Entry
}

var _ IOrderConversionUseCase = (*OrderConversionUseCase)(nil)

func NewOrderConversionUseCase(
	uow interfaces.IUnitOfWork,
	quotations interfaces.IQuotationRepository,
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	sequences interfaces.ISequenceGenerator,
	notifier interfaces.INotifier,
	settings Settings,
	log *logrus.Entry,
) *OrderConversionUseCase {
	settings = settings.withDefaults()
	return &OrderConversionUseCase{
		uow:        uow,
		quotations: quotations,
		orders:     orders,
		sequences:  sequences,
		notifier:   notifier,
		ledger:     NewStockLedger(products),
		guard:      NewVersionGuard(uow, settings.Retry),
		settings:   settings,
		log:        loggerOrDiscard(log).WithFields(logrus.Fields{"component": "order", "layer": "usecase"}),
	}
}

// ConvertQuotationToOrder reserves stock for every quotation line and creates
// the order, its items, the CONVERTED flip and the first history row in one
// commit. Converting an already converted quotation returns the existing
// order with AlreadyConverted set.
func (u *OrderConversionUseCase) ConvertQuotationToOrder(ctx context.Context, quotationID string, caller entities.Caller) (ConversionResult, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return ConversionResult{}, domainerr.NewValidation("quotationId", "is required")
	}
	if !caller.Authenticated() {
		return ConversionResult{}, domainerr.NewValidation("callerId", "is required")
	}

	log := u.log.WithFields(logrus.Fields{"quotation_id": quotationID, "caller_id": caller.ID})
	log.Info("convert start")

	var result ConversionResult
	err := u.guard.Retry(ctx, func(ctx context.Context, attempt int) error {
		r, err := u.convertOnce(ctx, quotationID, caller, log.WithField("attempt", attempt))
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		u.logFailure(log, err)
		return ConversionResult{}, err
	}

	if result.AlreadyConverted {
		log.WithField("order_id", result.OrderID).Info("convert idempotent hit")
		return result, nil
	}
	log.WithFields(logrus.Fields{"order_id": result.OrderID, "order_number": result.OrderNumber}).Info("convert success")
	u.publishConverted(ctx, result.OrderID, log)
	return result, nil
}

func (u *OrderConversionUseCase) convertOnce(ctx context.Context, quotationID string, caller entities.Caller, log *logrus.Entry) (ConversionResult, error) {
	q, err := u.loadQuotation(ctx, quotationID, caller)
	if err != nil {
		return ConversionResult{}, err
	}

	if existing, err := u.orders.GetByQuotationID(ctx, q.ID); err != nil {
		return ConversionResult{}, classifyStoreError("load order by quotation", err)
	} else if existing.ID != "" {
		return alreadyConverted(existing), nil
	}

	now := u.settings.Now()
	if err := u.checkConvertible(q, now); err != nil {
		return ConversionResult{}, err
	}

	seq, err := u.sequences.Next(ctx, orderSequenceName, now.Year())
	if err != nil {
		return ConversionResult{}, classifyStoreError("allocate order number", err)
	}
	order := buildOrder(q, formatOrderNumber(u.settings.OrderNumberPrefix, now.Year(), seq), now)
	history := entities.OrderStatusHistory{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Sequence:  order.Version,
		ToStatus:  entities.InitialOrderStatus,
		Actor:     caller.ID,
		Note:      "converted from quotation " + q.ID,
		CreatedAt: now,
	}

	txCtx, cancel := context.WithTimeout(ctx, u.settings.TxTimeout)
	defer cancel()

	err = u.uow.Transact(txCtx, func(tx interfaces.ITxn) error {
		var shortages []domainerr.Shortage
		for _, line := range aggregateLines(q.Items) {
			res, err := u.ledger.ReserveAndDecrement(txCtx, tx, line.ProductID, line.Quantity, CurrentVersion)
			var stockErr *domainerr.InsufficientStockError
			if errors.As(err, &stockErr) {
				shortages = append(shortages, stockErr.Shortages...)
				continue
			}
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"product_id": res.ProductID, "requested": res.Requested, "before": res.Before, "after": res.After,
			}).Debug("stock reserved")
		}
		if len(shortages) > 0 {
			return &domainerr.InsufficientStockError{Shortages: shortages}
		}

		tx.CreateOrder(order)
		tx.UpdateQuotationStatus(q.ID, entities.QuotationStatusConverted, q.Version)
		tx.AppendStatusHistory(history)
		return nil
	})
	if err != nil {
		var dup *interfaces.DuplicateKeyError
		if errors.As(err, &dup) && dup.Key == interfaces.KeyPrefixQuotation+q.ID {
			// A concurrent conversion committed first.
			return u.existingResult(ctx, q.ID)
		}
		return ConversionResult{}, classifyStoreError("commit conversion", err)
	}

	return ConversionResult{OrderID: order.ID, OrderNumber: order.OrderNumber, StockUpdated: true}, nil
}

// CheckEligibility runs the conversion preconditions and a stock preview
// without writing anything.
func (u *OrderConversionUseCase) CheckEligibility(ctx context.Context, quotationID string, caller entities.Caller) (Eligibility, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return Eligibility{}, domainerr.NewValidation("quotationId", "is required")
	}
	q, err := u.loadQuotation(ctx, quotationID, caller)
	if err != nil {
		return Eligibility{}, err
	}
	existing, err := u.orders.GetByQuotationID(ctx, q.ID)
	if err != nil {
		return Eligibility{}, classifyStoreError("load order by quotation", err)
	}
	if existing.ID != "" {
		return Eligibility{Reason: "already converted", ExistingOrderID: existing.ID}, nil
	}
	if err := u.checkConvertible(q, u.settings.Now()); err != nil {
		var stateErr *domainerr.InvalidStateError
		if errors.As(err, &stateErr) {
			return Eligibility{Reason: stateErr.Message}, nil
		}
		return Eligibility{Reason: err.Error()}, nil
	}

	var shortages []domainerr.Shortage
	for _, line := range aggregateLines(q.Items) {
		s, err := u.ledger.Shortfall(ctx, line.ProductID, line.Quantity)
		if err != nil {
			if errors.Is(err, domainerr.ErrNotFound) {
				return Eligibility{Reason: err.Error()}, nil
			}
			return Eligibility{}, classifyStoreError("load product", err)
		}
		if s != nil {
			shortages = append(shortages, *s)
		}
	}
	if len(shortages) > 0 {
		return Eligibility{Reason: "insufficient stock", Shortages: shortages}, nil
	}
	return Eligibility{Eligible: true}, nil
}

func (u *OrderConversionUseCase) loadQuotation(ctx context.Context, quotationID string, caller entities.Caller) (entities.Quotation, error) {
	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, classifyStoreError("load quotation", err)
	}
	if q.ID == "" {
		return entities.Quotation{}, domainerr.NewNotFound("quotation", quotationID)
	}
	if !caller.IsAdmin() && q.CustomerID != caller.ID {
		return entities.Quotation{}, &domainerr.ForbiddenError{Message: "quotation belongs to another customer"}
	}
	return q, nil
}

func (u *OrderConversionUseCase) checkConvertible(q entities.Quotation, now time.Time) error {
	if q.Status != entities.QuotationStatusApproved {
		return domainerr.NewInvalidState("quotation", q.ID, string(q.Status), "quotation not approved")
	}
	if q.Expired(now) {
		return domainerr.NewInvalidState("quotation", q.ID, string(q.Status), "quotation expired")
	}
	if len(q.Items) == 0 {
		return domainerr.NewInvalidState("quotation", q.ID, string(q.Status), "quotation has no items")
	}
	if len(q.Items) > u.settings.MaxQuotationLines {
		return domainerr.NewValidation("items", fmt.Sprintf("quotation has more than %d lines", u.settings.MaxQuotationLines))
	}
	for i, line := range q.Items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case strings.TrimSpace(line.ProductID) == "":
			return domainerr.NewValidation(field+".productId", "is required")
		case line.Quantity <= 0:
			return domainerr.NewValidation(field+".quantity", "must be positive")
		case line.UnitPrice.IsNegative():
			return domainerr.NewValidation(field+".unitPrice", "must not be negative")
		}
	}
	return nil
}

func (u *OrderConversionUseCase) existingResult(ctx context.Context, quotationID string) (ConversionResult, error) {
	existing, err := u.orders.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return ConversionResult{}, classifyStoreError("reload order by quotation", err)
	}
	if existing.ID == "" {
		return ConversionResult{}, &domainerr.TransientError{Op: "reload order by quotation", Err: errors.New("order key present but order not readable yet")}
	}
	return alreadyConverted(existing), nil
}

func (u *OrderConversionUseCase) publishConverted(ctx context.Context, orderID string, log *logrus.Entry) {
	if u.notifier == nil {
		return
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.settings.NotifyTimeout)
	defer cancel()

	order, err := u.orders.GetByID(notifyCtx, orderID)
	if err == nil && order.ID != "" {
		order.Items, err = u.orders.ListItems(notifyCtx, orderID)
	}
	if err == nil {
		err = u.notifier.NotifyOrderConverted(notifyCtx, order)
	}
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Warn("order converted event not published")
	}
}

func (u *OrderConversionUseCase) logFailure(log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, domainerr.ErrIntegrityViolation):
		log.WithError(err).Error("convert rejected by store constraint")
	case errors.Is(err, domainerr.ErrTransient):
		log.WithError(err).Error("convert failed on infrastructure")
	case errors.Is(err, domainerr.ErrConflict):
		log.WithError(err).Warn("convert gave up after version conflicts")
	default:
		log.WithError(err).Info("convert rejected")
	}
}

func alreadyConverted(o entities.Order) ConversionResult {
	return ConversionResult{OrderID: o.ID, OrderNumber: o.OrderNumber, AlreadyConverted: true}
}

func formatOrderNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}

type aggregatedLine struct {
	ProductID string
	Quantity  int64
}

// aggregateLines folds lines for the same product together so each product
// is decremented once per conversion. Output is sorted by product id.
func aggregateLines(items []entities.QuotationItem) []aggregatedLine {
	totals := map[string]int64{}
	for _, it := range items {
		totals[it.ProductID] += it.Quantity
	}
	out := make([]aggregatedLine, 0, len(totals))
	for id, qty := range totals {
		out = append(out, aggregatedLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

func buildOrder(q entities.Quotation, orderNumber string, now time.Time) entities.Order {
	orderID := uuid.NewString()
	items := make([]entities.OrderItem, 0, len(q.Items))
	for _, line := range q.Items {
		items = append(items, entities.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     orderID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal(),
			CreatedAt:   now,
		})
	}
	return entities.Order{
		ID:          orderID,
		OrderNumber: orderNumber,
		QuotationID: q.ID,
		CustomerID:  q.CustomerID,
		Status:      entities.InitialOrderStatus,
		TotalAmount: entities.SumLineTotals(items),
		Version:     1,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
