package usecase

import (
	"context"
	"strings"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/pkg/errors"
	"mados/pkg/logger"
)

type OnboardingUseCase struct {
	state     *appstate.State
	positions PositionSource
}

func NewOnboardingUseCase(state *appstate.State, positions PositionSource) *OnboardingUseCase {
	return &OnboardingUseCase{state: state, positions: positions}
}

type SellerRegistrationInput struct {
	StoreName   string
	Address     string
	Coordinates *entity.Coordinates
}

type PublicServiceRegistrationInput struct {
	ServiceName string
	ServiceType string
	Address     string
	Coordinates *entity.Coordinates
}

type OnboardingStatus struct {
	SellerStatus             entity.OnboardingStatus          `json:"seller_status"`
	StoreID                  string                           `json:"store_id,omitempty"`
	SellerApplication        *entity.SellerApplication        `json:"seller_application,omitempty"`
	PublicServiceStatus      entity.OnboardingStatus          `json:"public_service_status"`
	PublicServiceID          string                           `json:"public_service_id,omitempty"`
	PublicServiceApplication *entity.PublicServiceApplication `json:"public_service_application,omitempty"`
}

func (uc *OnboardingUseCase) Status(ctx context.Context, userID string) (*OnboardingStatus, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}

	status := &OnboardingStatus{
		SellerStatus:        me.SellerStatus.Normalize(),
		StoreID:             me.StoreID,
		PublicServiceStatus: me.PublicServiceStatus.Normalize(),
		PublicServiceID:     me.PublicServiceID,
	}
	if app, ok := ss.SellerApplication(); ok {
		status.SellerApplication = &app
	}
	if app, ok := ss.PublicServiceApplication(); ok {
		status.PublicServiceApplication = &app
	}
	return status, nil
}

// SubmitSeller moves the user from none to pending. The store is placed at
// the user's current position.
func (uc *OnboardingUseCase) SubmitSeller(ctx context.Context, userID string, input SellerRegistrationInput) (*entity.User, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	if me.SellerStatus.Normalize() != entity.OnboardingNone {
		return nil, errors.Conflict("Pendaftaran penjual sudah diajukan.")
	}

	name := strings.TrimSpace(input.StoreName)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" {
		return nil, errors.Validation("Nama toko dan alamat harus diisi.")
	}
	coords, ok := locate(uc.positions, userID, input.Coordinates)
	if !ok {
		return nil, errors.Validation(msgLocationMissing)
	}

	if !ss.SubmitSellerApplication(entity.SellerApplication{StoreName: name, Address: address, Coordinates: coords}) {
		return nil, errors.Conflict("Pendaftaran penjual sudah diajukan.")
	}
	logger.Info("seller application submitted by %s", userID)

	updated, _ := ss.CurrentUser()
	return &updated, nil
}

// ApproveSeller simulates the admin approval of a pending application.
func (uc *OnboardingUseCase) ApproveSeller(ctx context.Context, userID string) (*entity.Store, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	if me.SellerStatus.Normalize() != entity.OnboardingPending {
		return nil, errors.BadRequest("Tidak ada pendaftaran penjual yang menunggu persetujuan.", nil)
	}

	storeID := ss.ApproveSellerApplication()
	if storeID == "" {
		return nil, errors.BadRequest("Tidak ada pendaftaran penjual yang menunggu persetujuan.", nil)
	}
	logger.Info("seller application approved for %s, store %s", userID, storeID)

	store, _ := uc.state.Store(storeID)
	return &store, nil
}

func (uc *OnboardingUseCase) SubmitPublicService(ctx context.Context, userID string, input PublicServiceRegistrationInput) (*entity.User, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	if me.PublicServiceStatus.Normalize() != entity.OnboardingNone {
		return nil, errors.Conflict("Pendaftaran layanan publik sudah diajukan.")
	}

	name := strings.TrimSpace(input.ServiceName)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" || input.ServiceType == "" {
		return nil, errors.Validation("Semua kolom harus diisi.")
	}
	if !oneOf(input.ServiceType, entity.PublicServiceTypes) {
		return nil, errors.Validation("Jenis layanan tidak dikenal: " + input.ServiceType)
	}
	coords, ok := locate(uc.positions, userID, input.Coordinates)
	if !ok {
		return nil, errors.Validation(msgLocationMissing)
	}

	app := entity.PublicServiceApplication{
		ServiceName: name,
		ServiceType: input.ServiceType,
		Address:     address,
		Coordinates: coords,
	}
	if !ss.SubmitPublicServiceApplication(app) {
		return nil, errors.Conflict("Pendaftaran layanan publik sudah diajukan.")
	}
	logger.Info("public service application submitted by %s", userID)

	updated, _ := ss.CurrentUser()
	return &updated, nil
}

func (uc *OnboardingUseCase) ApprovePublicService(ctx context.Context, userID string) (*entity.PublicService, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	if me.PublicServiceStatus.Normalize() != entity.OnboardingPending {
		return nil, errors.BadRequest("Tidak ada pendaftaran layanan publik yang menunggu persetujuan.", nil)
	}

	serviceID := ss.ApprovePublicServiceApplication()
	if serviceID == "" {
		return nil, errors.BadRequest("Tidak ada pendaftaran layanan publik yang menunggu persetujuan.", nil)
	}
	logger.Info("public service approved for %s, service %s", userID, serviceID)

	ps, _ := uc.state.PublicService(serviceID)
	return &ps, nil
}
