package adaptor

import (
	"net/http"

	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/apperr"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog     *CatalogHandler
	Experience  *ExperienceHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:     NewCatalogHandler(service.Catalog, log),
		Experience:  NewExperienceHandler(service.Experience, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// respondServiceError maps typed engine errors onto the response envelope.
// Every failure leaves the engine categorized; nothing is matched on
// message text.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), apperr.FieldsOf(err))

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindPermission:
		log.Warn(operation+" failed - permission denied", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case apperr.KindState:
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case apperr.KindCapacity:
		log.Warn(operation+" failed - insufficient capacity", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
