package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	mailMocks "github.com/syemed/intake/internal/mail/mocks"
	"github.com/syemed/intake/internal/model"
	rpsMocks "github.com/syemed/intake/internal/repository/mocks"
	storageMocks "github.com/syemed/intake/internal/storage/mocks"
	"github.com/syemed/intake/internal/validation"
)

const testSummaryURL = "https://files.syemed.com/solicitudes_st/pdfs/resumen.pdf"

var testRequestCtx = context.Background()
var testSubmittedAt = time.Date(2024, time.March, 11, 14, 30, 52, 0, time.UTC)

func validDistributorSubmission() *model.Submission {
	return &model.Submission{
		Email:            "ventas@electronorte.com",
		RequesterType:    model.RequesterDistributor,
		UrgencyLevel:     3,
		Logistics:        []string{"Syemed retira el equipo"},
		TradeName:        "Electromedicina Norte",
		LegalName:        "Electromedicina Norte S.A.",
		TaxID:            "30-71234567-8",
		ContactName:      "Carla Méndez",
		ContactPhone:     "+54 11 4321-5678",
		AssignedAgent:    "Lucas",
		TechnicalContact: "Jorge Ruiz",
		EquipmentTenure:  model.TenureOwned,
		Reason:           model.ReasonTechnicalService,
		IssueTags:        []string{"No enciende"},
		Equipment: []model.EquipmentInput{
			{
				Type:         "Concentrador de O2",
				Brand:        "Philips Respironics",
				Model:        "EverFlo",
				SerialNumber: "SN-1001",
			},
		},
	}
}

type requestServiceTestSuite struct {
	suite.Suite
	requestSvc      RequestService
	transactorMock  *rpsMocks.Transactor
	requestRpsMock  *rpsMocks.RequestRepository
	objectStoreMock *storageMocks.ObjectStore
	mailerMock      *mailMocks.Mailer
}

func (s *requestServiceTestSuite) SetupSuite() {
	s.transactorMock = rpsMocks.NewTransactor(s.T())
	s.transactorMock.On(
		"WithinTransaction",
		context.Background(),
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		return txFunc(ctx)
	})
}

func (s *requestServiceTestSuite) SetupTest() {
	t := s.T()
	s.requestRpsMock = rpsMocks.NewRequestRepository(t)
	s.objectStoreMock = storageMocks.NewObjectStore(t)
	s.mailerMock = mailMocks.NewMailer(t)
	s.requestSvc = NewRequestService(s.transactorMock, s.requestRpsMock, s.objectStoreMock, s.mailerMock, "taller@syemed.com", logrus.New())
}

func (s *requestServiceTestSuite) TestSubmitValidationFailure() {
	sub := &model.Submission{}

	s.T().Log("empty submission must be rejected before anything is stored")
	{
		_, err := s.requestSvc.Submit(testRequestCtx, sub, nil, testSubmittedAt)
		s.Assert().Error(err, "empty submission must raise an error")
		s.Assert().IsType(&validation.PayloadError{}, err, "error must carry the violations")
		s.requestRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
		s.objectStoreMock.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything)
	}
}

func (s *requestServiceTestSuite) TestSubmitRejectsBadUpload() {
	sub := validDistributorSubmission()
	files := []Upload{
		{
			FieldName:        "falla_1",
			FileName:         "informe.exe",
			ContentType:      "application/octet-stream",
			Content:          []byte("MZ"),
			Category:         model.AttachmentCategoryFailure,
			EquipmentOrdinal: 1,
		},
	}

	s.T().Log("executable upload must invalidate the whole submission")
	{
		_, err := s.requestSvc.Submit(testRequestCtx, sub, files, testSubmittedAt)
		s.Assert().Error(err, "suspicious file must raise an error")
		s.Assert().IsType(&validation.PayloadError{}, err, "error must carry the violations")
		s.objectStoreMock.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything)
	}
}

func (s *requestServiceTestSuite) TestSubmitSuccessful() {
	sub := validDistributorSubmission()
	files := []Upload{
		{
			FieldName:        "falla_1",
			FileName:         "falla frontal.jpg",
			ContentType:      "image/jpeg",
			Content:          []byte("jpeg-bytes"),
			Category:         model.AttachmentCategoryFailure,
			EquipmentOrdinal: 1,
		},
	}

	var created *model.ServiceRequest
	s.requestRpsMock.On("Create", testRequestCtx, mock.AnythingOfType("*model.ServiceRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*model.ServiceRequest)
			req.ID = 123
			for i := range req.Equipment {
				req.Equipment[i].ID = int64(i + 1)
				req.Equipment[i].RequestID = req.ID
				req.Equipment[i].ServiceOrder = 2401 + int64(i)
			}
			created = req
		}).
		Return(nil).
		Once()

	s.objectStoreMock.On("Upload", testRequestCtx, mock.AnythingOfType("storage.Object")).Return(testSummaryURL, nil).Twice()
	s.requestRpsMock.On("SetSummaryURL", testRequestCtx, int64(123), testSummaryURL).Return(nil).Once()
	s.mailerMock.On("Send", testRequestCtx, mock.AnythingOfType("mail.Message")).Return(nil).Once()

	s.T().Log("valid submission must be persisted and followed up without warnings")
	{
		receipt, err := s.requestSvc.Submit(testRequestCtx, sub, files, testSubmittedAt)
		s.Require().NoError(err, "valid submission must not raise an error")
		s.Assert().Equal(int64(123), receipt.RequestID, "generated request id must be returned")
		s.Assert().Equal([]int64{2401}, receipt.ServiceOrders, "assigned OST numbers must be returned")
		s.Assert().Equal(testSummaryURL, receipt.SummaryURL, "summary url must be returned")
		s.Assert().Empty(receipt.Warnings, "no warnings expected")

		s.Require().NotNil(created, "request must reach the repository")
		s.Require().Len(created.Equipment, 1, "one equipment row expected")
		s.Assert().Equal(1, created.Equipment[0].Ordinal, "equipment keeps its position")
		s.Assert().Equal("Electromedicina Norte", created.Equipment[0].ClientLabel, "owned equipment is labeled with the customer")
		s.Require().NotNil(created.Equipment[0].IntakeNote, "issue tags must become the intake note")
		s.Assert().Equal("No enciende", *created.Equipment[0].IntakeNote, "intake note must carry the issue tags")
		s.Require().Len(created.Attachments, 1, "one attachment row expected")
		s.Assert().Equal(1, created.Attachments[0].EquipmentOrdinal, "attachment keeps its equipment link")
		s.Assert().Equal("jpg", created.Attachments[0].FileType, "file type is the bare extension")
	}
}

func (s *requestServiceTestSuite) TestSubmitRentedEquipmentBelongsToSyemed() {
	sub := validDistributorSubmission()
	sub.EquipmentTenure = model.TenureRented

	var created *model.ServiceRequest
	s.requestRpsMock.On("Create", testRequestCtx, mock.AnythingOfType("*model.ServiceRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*model.ServiceRequest)
			req.ID = 124
			for i := range req.Equipment {
				req.Equipment[i].ServiceOrder = 2402 + int64(i)
			}
			created = req
		}).
		Return(nil).
		Once()

	s.objectStoreMock.On("Upload", testRequestCtx, mock.AnythingOfType("storage.Object")).Return(testSummaryURL, nil).Once()
	s.requestRpsMock.On("SetSummaryURL", testRequestCtx, int64(124), testSummaryURL).Return(nil).Once()
	s.mailerMock.On("Send", testRequestCtx, mock.AnythingOfType("mail.Message")).Return(nil).Once()

	s.T().Log("rented equipment is always labeled Syemed")
	{
		_, err := s.requestSvc.Submit(testRequestCtx, sub, nil, testSubmittedAt)
		s.Require().NoError(err, "valid submission must not raise an error")
		s.Require().NotNil(created, "request must reach the repository")
		s.Assert().Equal("Syemed", created.Equipment[0].ClientLabel, "rented equipment belongs to Syemed")
	}
}

func (s *requestServiceTestSuite) TestSubmitStockIntakeStampsReason() {
	sub := &model.Submission{
		Email:          "deposito@syemed.com",
		RequesterType:  model.RequesterStaff,
		RequestingArea: "Logística",
		RequesterName:  "Hernán",
		EquipmentOwner: model.OwnerStock,
		Equipment: []model.EquipmentInput{
			{Type: "Aspirador", Brand: "DeVilbiss", Model: "Vacu-Aide", SerialNumber: "VA-118"},
		},
	}

	var created *model.ServiceRequest
	s.requestRpsMock.On("Create", testRequestCtx, mock.AnythingOfType("*model.ServiceRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*model.ServiceRequest)
			req.ID = 126
			created = req
		}).
		Return(nil).
		Once()

	s.objectStoreMock.On("Upload", testRequestCtx, mock.AnythingOfType("storage.Object")).Return(testSummaryURL, nil).Once()
	s.requestRpsMock.On("SetSummaryURL", testRequestCtx, int64(126), testSummaryURL).Return(nil).Once()
	s.mailerMock.On("Send", testRequestCtx, mock.AnythingOfType("mail.Message")).Return(nil).Once()

	s.T().Log("stock intake without a motivo gets the stock reason stamped")
	{
		_, err := s.requestSvc.Submit(testRequestCtx, sub, nil, testSubmittedAt)
		s.Require().NoError(err, "valid submission must not raise an error")
		s.Require().NotNil(created, "request must reach the repository")
		s.Assert().Equal(model.ReasonStockEquipment, created.Reason, "stock intake carries the fixed motivo")
		s.Assert().Nil(created.Equipment[0].IntakeNote, "stock intake must not derive an observacion")
	}
}

func (s *requestServiceTestSuite) TestSubmitUploadFailureDegrades() {
	sub := validDistributorSubmission()
	files := []Upload{
		{
			FieldName:        "falla_1",
			FileName:         "falla.jpg",
			ContentType:      "image/jpeg",
			Content:          []byte("jpeg-bytes"),
			Category:         model.AttachmentCategoryFailure,
			EquipmentOrdinal: 1,
		},
	}

	var created *model.ServiceRequest
	s.requestRpsMock.On("Create", testRequestCtx, mock.AnythingOfType("*model.ServiceRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*model.ServiceRequest)
			req.ID = 125
			created = req
		}).
		Return(nil).
		Once()

	s.objectStoreMock.On("Upload", testRequestCtx, mock.AnythingOfType("storage.Object")).Return("", errors.New("bucket unavailable")).Once()
	s.objectStoreMock.On("Upload", testRequestCtx, mock.AnythingOfType("storage.Object")).Return(testSummaryURL, nil).Once()
	s.requestRpsMock.On("SetSummaryURL", testRequestCtx, int64(125), testSummaryURL).Return(nil).Once()
	s.mailerMock.On("Send", testRequestCtx, mock.AnythingOfType("mail.Message")).Return(nil).Once()

	s.T().Log("failed attachment upload must degrade to a warning")
	{
		receipt, err := s.requestSvc.Submit(testRequestCtx, sub, files, testSubmittedAt)
		s.Require().NoError(err, "submission must survive a failed upload")
		s.Assert().Contains(receipt.Warnings, "No se pudo subir el archivo falla.jpg", "warning must name the file")
		s.Require().NotNil(created, "request must reach the repository")
		s.Assert().Empty(created.Attachments, "failed upload must not produce an attachment row")
	}
}

func (s *requestServiceTestSuite) TestSubmitEmailFailureWarns() {
	sub := validDistributorSubmission()

	s.requestRpsMock.On("Create", testRequestCtx, mock.AnythingOfType("*model.ServiceRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*model.ServiceRequest)
			req.ID = 126
		}).
		Return(nil).
		Once()

	s.objectStoreMock.On("Upload", testRequestCtx, mock.AnythingOfType("storage.Object")).Return(testSummaryURL, nil).Once()
	s.requestRpsMock.On("SetSummaryURL", testRequestCtx, int64(126), testSummaryURL).Return(nil).Once()
	s.mailerMock.On("Send", testRequestCtx, mock.AnythingOfType("mail.Message")).Return(errors.New("smtp timeout")).Once()

	s.T().Log("failed confirmation email must degrade to a warning")
	{
		receipt, err := s.requestSvc.Submit(testRequestCtx, sub, nil, testSubmittedAt)
		s.Require().NoError(err, "submission must survive a failed email")
		s.Assert().Equal(int64(126), receipt.RequestID, "request must still be persisted")
		s.Assert().Contains(receipt.Warnings, "No se pudo enviar el correo de confirmación", "warning must report the email failure")
	}
}

func (s *requestServiceTestSuite) TestSubmitPersistFailure() {
	sub := validDistributorSubmission()

	s.requestRpsMock.On("Create", testRequestCtx, mock.AnythingOfType("*model.ServiceRequest")).
		Return(errors.New("connection reset")).
		Once()

	s.T().Log("storage failure must fail the submission without follow-ups")
	{
		_, err := s.requestSvc.Submit(testRequestCtx, sub, nil, testSubmittedAt)
		s.Assert().Error(err, "persistence failure must be raised")
		s.mailerMock.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
	}
}

func (s *requestServiceTestSuite) TestExport() {
	requests := []model.ServiceRequest{
		{
			ID:             200,
			SubmittedAt:    testSubmittedAt,
			SubmitterEmail: "ventas@electronorte.com",
			RequesterType:  model.RequesterDistributor,
			Reason:         model.ReasonTechnicalService,
			Status:         model.RequestStatusPending,
		},
	}

	s.requestRpsMock.On("FindAll", testRequestCtx).Return(requests, nil).Once()

	s.T().Log("export must build a workbook from the stored requests")
	{
		workbook, err := s.requestSvc.Export(testRequestCtx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(workbook, "workbook must not be empty")
	}
}

// start request service test suite
func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(requestServiceTestSuite))
}
