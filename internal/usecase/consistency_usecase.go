package usecase

import (
	"context"
	"sort"
	"strings"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Check types accepted by RunCheck.
const (
	CheckAll             = "all"
	CheckOrderItems      = "order_items"
	CheckNegativeStock   = "negative_stock"
	CheckOrderIntegrity  = "order_integrity"
	CheckOrphanedRecords = "orphaned_records"
)

// Check names reported in CheckResult.CheckName.
const (
	CheckNameOrderTotals     = "orders_total_amount"
	CheckNameNegativeStock   = "products_negative_stock"
	CheckNameOrderIntegrity  = "order_integrity"
	CheckNameOrphanedRecords = "orphaned_records"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one invariant violation found in committed data.
type Issue struct {
	Check      string         `json:"check"`
	Severity   Severity       `json:"severity"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
}

type CheckResult struct {
	CheckName  string  `json:"checkName"`
	IsValid    bool    `json:"isValid"`
	IssueCount int     `json:"issueCount"`
	Issues     []Issue `json:"issues"`
}

type ConsistencyReport struct {
	IsValid bool          `json:"isValid"`
	Checks  []CheckResult `json:"checks"`
}

// Issues flattens the issues of every check.
func (r ConsistencyReport) Issues() []Issue {
	var out []Issue
	for _, c := range r.Checks {
		out = append(out, c.Issues...)
	}
	return out
}

// IConsistencyUseCase runs read-only scans for invariant violations.
type IConsistencyUseCase interface {
	CheckOrderItemsConsistency(ctx context.Context) ([]Issue, error)
	CheckNegativeStock(ctx context.Context) ([]Issue, error)
	CheckOrderIntegrity(ctx context.Context, orderID string) ([]Issue, error)
	CheckOrphanedRecords(ctx context.Context) ([]Issue, error)
	RunCheck(ctx context.Context, checkType, orderID string) (ConsistencyReport, error)
}

type ConsistencyUseCase struct {
	reader   interfaces.IConsistencyReader
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	log      *logrus.Entry
}

var _ IConsistencyUseCase = (*ConsistencyUseCase)(nil)

func NewConsistencyUseCase(reader interfaces.IConsistencyReader, orders interfaces.IOrderRepository, products interfaces.IProductRepository, log *logrus.Entry) *ConsistencyUseCase {
	return &ConsistencyUseCase{
		reader:   reader,
		orders:   orders,
		products: products,
		log:      loggerOrDiscard(log).WithFields(logrus.Fields{"component": "consistency", "layer": "usecase"}),
	}
}

// CheckOrderItemsConsistency compares every order's total_amount with the sum
// of its item line totals.
func (u *ConsistencyUseCase) CheckOrderItemsConsistency(ctx context.Context) ([]Issue, error) {
	orders, err := u.reader.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	items, err := u.reader.ListOrderItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list order items")
	}
	byOrder := map[string][]entities.OrderItem{}
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	var issues []Issue
	for _, o := range orders {
		sum := entities.SumLineTotals(byOrder[o.ID])
		if !sum.Equal(o.TotalAmount) {
			issues = append(issues, Issue{
				Check:      CheckNameOrderTotals,
				Severity:   SeverityError,
				EntityType: "order",
				EntityID:   o.ID,
				Message:    "total_amount does not match the sum of item line totals",
				Details: map[string]any{
					"order_number": o.OrderNumber,
					"total_amount": o.TotalAmount.String(),
					"items_total":  sum.String(),
					"difference":   o.TotalAmount.Sub(sum).String(),
					"item_count":   len(byOrder[o.ID]),
				},
			})
		}
	}
	return issues, nil
}

func (u *ConsistencyUseCase) CheckNegativeStock(ctx context.Context) ([]Issue, error) {
	products, err := u.reader.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	var issues []Issue
	for _, p := range products {
		if p.StockQuantity < 0 {
			issues = append(issues, Issue{
				Check:      CheckNameNegativeStock,
				Severity:   SeverityError,
				EntityType: "product",
				EntityID:   p.ID,
				Message:    "stock_quantity is negative",
				Details:    map[string]any{"name": p.Name, "stock_quantity": p.StockQuantity, "version": p.Version},
			})
		}
	}
	return issues, nil
}

// CheckOrderIntegrity validates referential completeness for one order, or
// for every order when orderID is empty.
func (u *ConsistencyUseCase) CheckOrderIntegrity(ctx context.Context, orderID string) ([]Issue, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID != "" {
		return u.checkSingleOrderIntegrity(ctx, orderID)
	}

	orders, err := u.reader.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	items, err := u.reader.ListOrderItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list order items")
	}
	products, err := u.reader.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	history, err := u.reader.ListStatusHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list status history")
	}

	orderSet := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		orderSet[o.ID] = struct{}{}
	}
	productSet := make(map[string]struct{}, len(products))
	for _, p := range products {
		productSet[p.ID] = struct{}{}
	}
	itemCount := map[string]int{}
	historyCount := map[string]int{}
	for _, h := range history {
		historyCount[h.OrderID]++
	}

	var issues []Issue
	for _, it := range items {
		itemCount[it.OrderID]++
		issues = append(issues, itemReferenceIssues(it, hasKey(orderSet, it.OrderID), hasKey(productSet, it.ProductID))...)
	}
	for _, o := range orders {
		issues = append(issues, orderShapeIssues(o, itemCount[o.ID], historyCount[o.ID])...)
	}
	return issues, nil
}

func (u *ConsistencyUseCase) checkSingleOrderIntegrity(ctx context.Context, orderID string) ([]Issue, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "load order")
	}
	if o.ID == "" {
		return nil, domainerr.NewNotFound("order", orderID)
	}
	items, err := u.orders.ListItems(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list order items")
	}
	history, err := u.orders.ListStatusHistory(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list status history")
	}

	var issues []Issue
	for _, it := range items {
		p, err := u.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, errors.Wrapf(err, "load product %s", it.ProductID)
		}
		issues = append(issues, itemReferenceIssues(it, true, p.ID != "")...)
	}
	issues = append(issues, orderShapeIssues(o, len(items), len(history))...)
	return issues, nil
}

// CheckOrphanedRecords finds rows whose parent no longer exists.
func (u *ConsistencyUseCase) CheckOrphanedRecords(ctx context.Context) ([]Issue, error) {
	quotationIDs, err := u.reader.ListQuotationIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list quotations")
	}
	orders, err := u.reader.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	history, err := u.reader.ListStatusHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list status history")
	}
	requestIDs, err := u.reader.ListSampleRequestIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sample requests")
	}
	sampleItems, err := u.reader.ListSampleItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sample items")
	}

	quotations := toSet(quotationIDs)
	requests := toSet(requestIDs)
	orderSet := make(map[string]struct{}, len(orders))

	var issues []Issue
	for _, o := range orders {
		orderSet[o.ID] = struct{}{}
		if o.QuotationID != "" && !hasKey(quotations, o.QuotationID) {
			issues = append(issues, Issue{
				Check:      CheckNameOrphanedRecords,
				Severity:   SeverityWarning,
				EntityType: "order",
				EntityID:   o.ID,
				Message:    "order references a quotation that does not exist",
				Details:    map[string]any{"table": "orders", "quotation_id": o.QuotationID},
			})
		}
	}
	for _, h := range history {
		if !hasKey(orderSet, h.OrderID) {
			issues = append(issues, Issue{
				Check:      CheckNameOrphanedRecords,
				Severity:   SeverityError,
				EntityType: "order_status_history",
				EntityID:   h.ID,
				Message:    "status history references an order that does not exist",
				Details:    map[string]any{"table": "order_status_history", "order_id": h.OrderID},
			})
		}
	}
	for _, it := range sampleItems {
		if !hasKey(requests, it.SampleRequestID) {
			issues = append(issues, Issue{
				Check:      CheckNameOrphanedRecords,
				Severity:   SeverityError,
				EntityType: "sample_item",
				EntityID:   it.ID,
				Message:    "sample item references a sample request that does not exist",
				Details:    map[string]any{"table": "sample_items", "sample_request_id": it.SampleRequestID},
			})
		}
	}
	return issues, nil
}

type namedCheck struct {
	name string
	run  func(ctx context.Context) ([]Issue, error)
}

// RunCheck executes the checks selected by checkType. "all" runs every check
// concurrently; orderID scopes the order_integrity check.
func (u *ConsistencyUseCase) RunCheck(ctx context.Context, checkType, orderID string) (ConsistencyReport, error) {
	checkType = strings.TrimSpace(checkType)
	if checkType == "" {
		checkType = CheckAll
	}

	all := []namedCheck{
		{CheckNameOrderTotals, u.CheckOrderItemsConsistency},
		{CheckNameNegativeStock, u.CheckNegativeStock},
		{CheckNameOrderIntegrity, func(ctx context.Context) ([]Issue, error) { return u.CheckOrderIntegrity(ctx, orderID) }},
		{CheckNameOrphanedRecords, u.CheckOrphanedRecords},
	}
	var selected []namedCheck
	switch checkType {
	case CheckAll:
		selected = all
	case CheckOrderItems:
		selected = all[0:1]
	case CheckNegativeStock:
		selected = all[1:2]
	case CheckOrderIntegrity:
		selected = all[2:3]
	case CheckOrphanedRecords:
		selected = all[3:4]
	default:
		return ConsistencyReport{}, domainerr.NewValidation("checkType", "unknown check type "+checkType)
	}

	results := make([]CheckResult, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range selected {
		g.Go(func() error {
			issues, err := c.run(gctx)
			if err != nil {
				return errors.Wrapf(err, "check %s", c.name)
			}
			sortIssues(issues)
			results[i] = CheckResult{CheckName: c.name, IsValid: len(issues) == 0, IssueCount: len(issues), Issues: issues}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if !domainerr.Classified(err) {
			err = &domainerr.TransientError{Op: "consistency check", Err: err}
		}
		u.log.WithError(err).WithField("check_type", checkType).Error("consistency check failed")
		return ConsistencyReport{}, err
	}

	report := ConsistencyReport{IsValid: true, Checks: results}
	for _, r := range results {
		if !r.IsValid {
			report.IsValid = false
		}
		u.log.WithFields(logrus.Fields{"check": r.CheckName, "issues": r.IssueCount}).Info("consistency check finished")
	}
	return report, nil
}

func itemReferenceIssues(it entities.OrderItem, orderExists, productExists bool) []Issue {
	var issues []Issue
	if !orderExists {
		issues = append(issues, Issue{
			Check:      CheckNameOrderIntegrity,
			Severity:   SeverityError,
			EntityType: "order_item",
			EntityID:   it.ID,
			Message:    "order item references an order that does not exist",
			Details:    map[string]any{"order_id": it.OrderID},
		})
	}
	if !productExists {
		issues = append(issues, Issue{
			Check:      CheckNameOrderIntegrity,
			Severity:   SeverityError,
			EntityType: "order_item",
			EntityID:   it.ID,
			Message:    "order item references a product that does not exist",
			Details:    map[string]any{"order_id": it.OrderID, "product_id": it.ProductID},
		})
	}
	if it.Quantity <= 0 {
		issues = append(issues, Issue{
			Check:      CheckNameOrderIntegrity,
			Severity:   SeverityError,
			EntityType: "order_item",
			EntityID:   it.ID,
			Message:    "order item quantity is not positive",
			Details:    map[string]any{"order_id": it.OrderID, "quantity": it.Quantity},
		})
	}
	return issues
}

func orderShapeIssues(o entities.Order, itemCount, historyCount int) []Issue {
	var issues []Issue
	if itemCount == 0 {
		issues = append(issues, Issue{
			Check:      CheckNameOrderIntegrity,
			Severity:   SeverityError,
			EntityType: "order",
			EntityID:   o.ID,
			Message:    "order has no items",
			Details:    map[string]any{"order_number": o.OrderNumber},
		})
	}
	if o.Status != entities.InitialOrderStatus && historyCount == 0 {
		issues = append(issues, Issue{
			Check:      CheckNameOrderIntegrity,
			Severity:   SeverityError,
			EntityType: "order",
			EntityID:   o.ID,
			Message:    "order advanced past received without status history",
			Details:    map[string]any{"order_number": o.OrderNumber, "status": string(o.Status)},
		})
	}
	if o.TotalAmount.IsNegative() {
		issues = append(issues, Issue{
			Check:      CheckNameOrderIntegrity,
			Severity:   SeverityError,
			EntityType: "order",
			EntityID:   o.ID,
			Message:    "order total_amount is negative",
			Details:    map[string]any{"total_amount": o.TotalAmount.String()},
		})
	}
	return issues
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].EntityType != issues[j].EntityType {
			return issues[i].EntityType < issues[j].EntityType
		}
		if issues[i].EntityID != issues[j].EntityID {
			return issues[i].EntityID < issues[j].EntityID
		}
		return issues[i].Message < issues[j].Message
	})
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func hasKey(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}
