package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"fishbill/internal/billing/models"
	"fishbill/internal/billing/service"
	"fishbill/internal/billing/store/artifact"
	"fishbill/internal/billing/validate"
	catalogservice "fishbill/internal/catalog/service"
	catalogstore "fishbill/internal/catalog/store"
	"fishbill/internal/document"
	"fishbill/internal/handoff"
	dErrors "fishbill/pkg/domain-errors"
	"fishbill/pkg/platform/audit"
	"fishbill/pkg/testutil"
)

type stubRenderer struct {
	err   error
	calls int
}

func (r *stubRenderer) Render(tx *models.Transaction) (*document.Document, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &document.Document{
		Bytes:    []byte("%PDF-1.4 stub"),
		Filename: document.Filename(tx.PartyName, tx.Date),
	}, nil
}

type nopClipboard struct{}

func (nopClipboard) Write(string) error { return nil }

type BillingServiceSuite struct {
	suite.Suite

	renderer *stubRenderer
	auditLog *audit.InMemoryStore
	svc      *service.Service
}

func TestBillingServiceSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	parties := catalogstore.NewInMemory()
	catalogstore.Seed(parties)
	catalog, err := catalogservice.New(parties)
	require.NoError(s.T(), err)

	dispatcher := handoff.NewDispatcher(
		handoff.WithOpener(func(string) error { return nil }),
		handoff.WithClipboards(nopClipboard{}, nopClipboard{}),
	)
	ho := handoff.NewService(
		handoff.NewTemplates(handoff.Business{
			Name:    "THANJAVUR FISH SALES",
			Contact: "+91-9876543210",
			Tagline: "Fresh fish, honest prices.",
		}),
		dispatcher,
		handoff.WithFallbackDelay(5*time.Millisecond),
	)

	s.renderer = &stubRenderer{}
	s.auditLog = audit.NewInMemoryStore()

	svc, err := service.New(catalog, validate.NewGate("91"), s.renderer, artifact.NewInMemory(), ho,
		service.WithAuditPublisher(audit.NewStorePublisher(s.auditLog)),
	)
	require.NoError(s.T(), err)
	s.svc = svc
}

func (s *BillingServiceSuite) draft() models.DraftBill {
	return models.DraftBill{
		PartyName:     "Selva Seafoods",
		Item:          "Seer Fish",
		Quantity:      "5",
		Rate:          "200",
		Payment:       "500",
		Date:          "2024-01-15",
		IssuerName:    "Rajan",
		IssuerContact: "+919876543210",
	}
}

func (s *BillingServiceSuite) TestGenerateDerivesBalancesFromCatalogSnapshot() {
	tx, err := s.svc.Generate(context.Background(), s.draft())
	require.NoError(s.T(), err)

	// Selva Seafoods is seeded with a 2500 balance.
	assert.Equal(s.T(), "1000.00", tx.Amount.StringFixed(2))
	assert.Equal(s.T(), "2500.00", tx.PriorBalance.StringFixed(2))
	assert.Equal(s.T(), "3000.00", tx.Remaining.StringFixed(2))
	assert.Equal(s.T(), models.StatusOwed, tx.Status)
	assert.Equal(s.T(), "+919876543211", tx.PartyContact)
	assert.NotEqual(s.T(), uuid.Nil, tx.ID)
}

func (s *BillingServiceSuite) TestGenerateClearedWhenPaymentCoversEverything() {
	draft := s.draft()
	draft.PartyName = "Kumaran Exports" // zero prior balance
	draft.Payment = "1000"

	tx, err := s.svc.Generate(context.Background(), draft)
	require.NoError(s.T(), err)

	assert.True(s.T(), tx.Remaining.IsZero())
	assert.Equal(s.T(), models.StatusCleared, tx.Status)
}

func (s *BillingServiceSuite) TestGenerateRejectsUnknownParty() {
	draft := s.draft()
	draft.PartyName = "Nobody Fisheries"

	_, err := s.svc.Generate(context.Background(), draft)
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeBadRequest, dErrors.CodeOf(err))
	assert.Equal(s.T(), "party_name", dErrors.FieldOf(err))
}

func (s *BillingServiceSuite) TestGenerateShortCircuitsOnGateFailure() {
	draft := s.draft()
	draft.Quantity = "-2"

	_, err := s.svc.Generate(context.Background(), draft)
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeInvalidQuantityOrRate, dErrors.CodeOf(err))
	assert.Zero(s.T(), s.renderer.calls, "gate failures must not reach the renderer")
}

func (s *BillingServiceSuite) TestRenderFailureLeavesNothingBehind() {
	s.renderer.err = dErrors.New(dErrors.CodeRenderFailure, "layout overflow")

	_, err := s.svc.Generate(context.Background(), s.draft())
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeRenderFailure, dErrors.CodeOf(err))

	events, listErr := s.auditLog.ListByBill(context.Background(), uuid.Nil)
	require.NoError(s.T(), listErr)
	assert.Empty(s.T(), events, "no audit trail for an aborted submission")
}

func (s *BillingServiceSuite) TestDocumentReturnsStoredArtifact() {
	tx, err := s.svc.Generate(context.Background(), s.draft())
	require.NoError(s.T(), err)

	doc, err := s.svc.Document(context.Background(), tx.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "bill_Selva Seafoods_2024-01-15.pdf", doc.Filename)
	assert.NotEmpty(s.T(), doc.Bytes)
}

func (s *BillingServiceSuite) TestDocumentUnknownBill() {
	_, err := s.svc.Document(context.Background(), uuid.New())
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *BillingServiceSuite) TestGetUnknownBill() {
	_, err := s.svc.Get(context.Background(), uuid.New())
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *BillingServiceSuite) TestHandoffReturnsPlanAndAudits() {
	tx, err := s.svc.Generate(context.Background(), s.draft())
	require.NoError(s.T(), err)

	plan, err := s.svc.Handoff(context.Background(), tx.ID,
		"Mozilla/5.0 (Linux; Android 14) Mobile Safari/537.36")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), handoff.TargetMobile, plan.Target)
	assert.NotEmpty(s.T(), plan.FallbackURL)
	assert.Contains(s.T(), plan.Message, "Selva Seafoods")

	events, err := s.auditLog.ListByBill(context.Background(), tx.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), events, 2)
	assert.Equal(s.T(), audit.ActionBillGenerated, events[0].Action)
	assert.Equal(s.T(), audit.ActionHandoffDispatched, events[1].Action)
	assert.Equal(s.T(), "mobile", events[1].Metadata["target"])
}

func (s *BillingServiceSuite) TestMessagesForFinalizedBill() {
	tx, err := s.svc.Generate(context.Background(), s.draft())
	require.NoError(s.T(), err)

	msgs, err := s.svc.Messages(context.Background(), tx.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), msgs, 3)
	assert.Contains(s.T(), msgs["customer"], "Dear Selva Seafoods")
}

func (s *BillingServiceSuite) TestGenerateDefaultsIssuerName() {
	draft := s.draft()
	draft.IssuerName = ""

	tx, err := s.svc.Generate(context.Background(), draft)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Business Owner", tx.IssuerName)
}

func TestFullBillingScenario(t *testing.T) {
	var s BillingServiceSuite
	s.SetT(t)
	s.SetupTest()

	var tx *models.Transaction

	testutil.Given(t, "a seeded catalog and a valid submission", func(t *testing.T) {
		var err error
		tx, err = s.svc.Generate(context.Background(), s.draft())
		require.NoError(t, err)
	})

	testutil.When(t, "the owner downloads the bill again", func(t *testing.T) {
		doc, err := s.svc.Document(context.Background(), tx.ID)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF")))
	})

	testutil.Then(t, "the audit trail shows generation and download", func(t *testing.T) {
		events, err := s.auditLog.ListByBill(context.Background(), tx.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, audit.ActionBillGenerated, events[0].Action)
		assert.Equal(t, audit.ActionDocumentDownloaded, events[1].Action)
	})
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := service.New(nil, nil, nil, nil, nil); err == nil {
		t.Fatal("expected constructor to reject nil collaborators")
	}
}
