package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	sampleSequenceName      = "sample"
	MaxSampleItems          = 5
	MaxDeliveryDestinations = 5
)

type CustomerInput struct {
	CompanyName   string `validate:"max=200"`
	ContactPerson string `validate:"required,max=100"`
	Email         string `validate:"required,email"`
	Phone         string `validate:"required,max=30"`
}

type DestinationInput struct {
	CompanyName   string `validate:"max=200"`
	ContactPerson string `validate:"required,max=100"`
	Phone         string `validate:"required,max=30"`
	PostalCode    string `validate:"max=20"`
	Address       string `validate:"required,max=500"`
	IsPrimary     bool
}

type SampleItemInput struct {
	ProductID      string `validate:"max=64"`
	ProductName    string `validate:"required,max=200"`
	Category       string `validate:"required,max=100"`
	Quantity       int64  `validate:"min=1,max=10"`
	Specifications map[string]any
	Notes          string `validate:"max=1000"`
}

// SampleRequestCommand is the already shape-decoded submission.
type SampleRequestCommand struct {
	Caller         entities.Caller
	Customer       *CustomerInput
	DeliveryType   string             `validate:"required,oneof=normal other"`
	Destinations   []DestinationInput `validate:"dive"`
	Items          []SampleItemInput  `validate:"dive"`
	Message        string
	Urgency        string `validate:"omitempty,oneof=low normal high urgent"`
	PrivacyConsent bool
}

type SampleRequestResult struct {
	ID            string
	RequestNumber string
	ItemCount     int
	EmailSent     bool
}

// ISampleRequestUseCase records sample requests and notifies the customer.
type ISampleRequestUseCase interface {
	Submit(ctx context.Context, cmd SampleRequestCommand) (SampleRequestResult, error)
	Get(ctx context.Context, requestNumber string, caller entities.Caller) (entities.SampleRequest, error)
}

type SampleRequestUseCase struct {
	uow       interfaces.IUnitOfWork
	samples   interfaces.ISampleRequestRepository
	sequences interfaces.ISequenceGenerator
	notifier  interfaces.INotifier
	validate  *validator.Validate
	settings  Settings
	log       *logrus.Entry
}

var _ ISampleRequestUseCase = (*SampleRequestUseCase)(nil)

func NewSampleRequestUseCase(
	uow interfaces.IUnitOfWork,
	samples interfaces.ISampleRequestRepository,
	sequences interfaces.ISequenceGenerator,
	notifier interfaces.INotifier,
	settings Settings,
	log *logrus.Entry,
) *SampleRequestUseCase {
	return &SampleRequestUseCase{
		uow:       uow,
		samples:   samples,
		sequences: sequences,
		notifier:  notifier,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		settings:  settings.withDefaults(),
		log:       loggerOrDiscard(log).WithFields(logrus.Fields{"component": "sample", "layer": "usecase"}),
	}
}

// Submit validates cmd, then writes the request and its items in one commit.
// The confirmation is sent after the commit; its failure only flips EmailSent.
func (u *SampleRequestUseCase) Submit(ctx context.Context, cmd SampleRequestCommand) (SampleRequestResult, error) {
	cmd = trimCommand(cmd)
	specs, err := u.validateCommand(cmd)
	if err != nil {
		u.log.WithError(err).Info("sample request rejected")
		return SampleRequestResult{}, err
	}

	now := u.settings.Now()
	seq, err := u.sequences.Next(ctx, sampleSequenceName, now.Year())
	if err != nil {
		err = classifyStoreError("allocate request number", err)
		u.log.WithError(err).Error("sample request number allocation failed")
		return SampleRequestResult{}, err
	}

	req := buildSampleRequest(cmd, specs, formatRequestNumber(u.settings.RequestNumberPrefix, now.Year(), seq), now)
	log := u.log.WithFields(logrus.Fields{"request_number": req.RequestNumber, "item_count": len(req.Items)})

	txCtx, cancel := context.WithTimeout(ctx, u.settings.TxTimeout)
	defer cancel()
	if err := u.uow.Transact(txCtx, func(tx interfaces.ITxn) error {
		tx.CreateSampleRequest(req)
		return nil
	}); err != nil {
		err = classifyStoreError("commit sample request", err)
		log.WithError(err).Error("sample request not stored")
		return SampleRequestResult{}, err
	}
	log.Info("sample request stored")

	return SampleRequestResult{
		ID:            req.ID,
		RequestNumber: req.RequestNumber,
		ItemCount:     len(req.Items),
		EmailSent:     u.notify(ctx, req, log),
	}, nil
}

// Get loads a request by its public number. Members only see their own
// requests; guest submissions are visible to admins only.
func (u *SampleRequestUseCase) Get(ctx context.Context, requestNumber string, caller entities.Caller) (entities.SampleRequest, error) {
	requestNumber = strings.TrimSpace(requestNumber)
	if requestNumber == "" {
		return entities.SampleRequest{}, domainerr.NewValidation("requestNumber", "is required")
	}
	req, err := u.samples.GetByRequestNumber(ctx, requestNumber)
	if err != nil {
		return entities.SampleRequest{}, classifyStoreError("load sample request", err)
	}
	if req.ID == "" {
		return entities.SampleRequest{}, domainerr.NewNotFound("sample request", requestNumber)
	}
	if !caller.IsAdmin() && (req.UserID == "" || req.UserID != caller.ID) {
		return entities.SampleRequest{}, &domainerr.ForbiddenError{Message: "sample request belongs to another customer"}
	}
	return req, nil
}

func (u *SampleRequestUseCase) notify(ctx context.Context, req entities.SampleRequest, log *logrus.Entry) bool {
	if u.notifier == nil {
		log.Warn("sample request confirmation skipped: no notifier")
		return false
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.settings.NotifyTimeout)
	defer cancel()
	if err := u.notifier.NotifySampleRequest(notifyCtx, req); err != nil {
		log.WithError(err).Warn("sample request confirmation failed")
		return false
	}
	return true
}

func (u *SampleRequestUseCase) validateCommand(cmd SampleRequestCommand) ([]entities.Specifications, error) {
	if n := len(cmd.Items); n == 0 || n > MaxSampleItems {
		return nil, domainerr.NewValidation("sampleItems", "sample count out of bounds")
	}
	if len(cmd.Destinations) == 0 {
		return nil, domainerr.NewValidation("deliveryDestinations", "at least one delivery destination is required")
	}
	if len(cmd.Destinations) > MaxDeliveryDestinations {
		return nil, domainerr.NewValidation("deliveryDestinations", "delivery destination count out of bounds")
	}
	msgLen := utf8.RuneCountInString(strings.TrimSpace(cmd.Message))
	if msgLen < u.settings.MinMessageLength {
		return nil, domainerr.NewValidation("message", fmt.Sprintf("must be at least %d characters", u.settings.MinMessageLength))
	}
	if msgLen > u.settings.MaxMessageLength {
		return nil, domainerr.NewValidation("message", fmt.Sprintf("must be at most %d characters", u.settings.MaxMessageLength))
	}
	if !cmd.PrivacyConsent {
		return nil, domainerr.NewValidation("privacyConsent", "must be accepted")
	}
	if cmd.Customer == nil && !cmd.Caller.Authenticated() {
		return nil, domainerr.NewValidation("customerInfo", "is required for guest requests")
	}

	if err := u.validate.Struct(cmd); err != nil {
		return nil, fromValidatorError(err)
	}

	specs := make([]entities.Specifications, 0, len(cmd.Items))
	for i, it := range cmd.Items {
		parsed, err := entities.ParseSpecifications(it.Specifications)
		if err != nil {
			return nil, domainerr.NewValidation(fmt.Sprintf("sampleItems[%d].specifications", i), err.Error())
		}
		specs = append(specs, parsed)
	}
	return specs, nil
}

// trimCommand returns a copy of cmd with surrounding whitespace removed from
// every text field, so the validator sees what will be stored.
func trimCommand(cmd SampleRequestCommand) SampleRequestCommand {
	out := cmd
	out.DeliveryType = strings.TrimSpace(cmd.DeliveryType)
	out.Message = strings.TrimSpace(cmd.Message)
	out.Urgency = strings.TrimSpace(cmd.Urgency)
	if cmd.Customer != nil {
		out.Customer = &CustomerInput{
			CompanyName:   strings.TrimSpace(cmd.Customer.CompanyName),
			ContactPerson: strings.TrimSpace(cmd.Customer.ContactPerson),
			Email:         strings.TrimSpace(cmd.Customer.Email),
			Phone:         strings.TrimSpace(cmd.Customer.Phone),
		}
	}
	out.Destinations = make([]DestinationInput, 0, len(cmd.Destinations))
	for _, d := range cmd.Destinations {
		out.Destinations = append(out.Destinations, DestinationInput{
			CompanyName:   strings.TrimSpace(d.CompanyName),
			ContactPerson: strings.TrimSpace(d.ContactPerson),
			Phone:         strings.TrimSpace(d.Phone),
			PostalCode:    strings.TrimSpace(d.PostalCode),
			Address:       strings.TrimSpace(d.Address),
			IsPrimary:     d.IsPrimary,
		})
	}
	out.Items = make([]SampleItemInput, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		out.Items = append(out.Items, SampleItemInput{
			ProductID:      strings.TrimSpace(it.ProductID),
			ProductName:    strings.TrimSpace(it.ProductName),
			Category:       strings.TrimSpace(it.Category),
			Quantity:       it.Quantity,
			Specifications: it.Specifications,
			Notes:          strings.TrimSpace(it.Notes),
		})
	}
	return out
}

func fromValidatorError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return domainerr.NewValidation(field, "failed "+fe.Tag()+" rule")
	}
	return domainerr.NewValidation("", err.Error())
}

func buildSampleRequest(cmd SampleRequestCommand, specs []entities.Specifications, requestNumber string, now time.Time) entities.SampleRequest {
	req := entities.SampleRequest{
		ID:            uuid.NewString(),
		RequestNumber: requestNumber,
		UserID:        cmd.Caller.ID,
		Status:        entities.SampleRequestStatusReceived,
		DeliveryType:  entities.DeliveryType(cmd.DeliveryType),
		Message:       cmd.Message,
		Urgency:       cmd.Urgency,
		CreatedAt:     now,
	}
	if cmd.Customer != nil {
		req.Customer = entities.CustomerInfo{
			CompanyName:   cmd.Customer.CompanyName,
			ContactPerson: cmd.Customer.ContactPerson,
			Email:         cmd.Customer.Email,
			Phone:         cmd.Customer.Phone,
		}
	}
	for _, d := range cmd.Destinations {
		req.Destinations = append(req.Destinations, entities.DeliveryDestination{
			CompanyName:   d.CompanyName,
			ContactPerson: d.ContactPerson,
			Phone:         d.Phone,
			PostalCode:    d.PostalCode,
			Address:       d.Address,
			IsPrimary:     d.IsPrimary,
		})
	}
	for i, it := range cmd.Items {
		req.Items = append(req.Items, entities.SampleItem{
			ID:              uuid.NewString(),
			SampleRequestID: req.ID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Category:        it.Category,
			Quantity:        it.Quantity,
			Specifications:  specs[i],
			Notes:           it.Notes,
			CreatedAt:       now,
		})
	}
	return req
}

func formatRequestNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}
