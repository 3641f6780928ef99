package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// messages carries the user-facing text for every named business error.
// Infrastructure failures fall back to a generic retry message.
var messages = map[string]string{
	CodeSlotInPast:        "Este horário já passou.",
	CodeShopClosed:        "A barbearia está fechada neste dia.",
	CodeBarberUnavailable: "O barbeiro não atende neste dia.",
	CodeSlotUnavailable:   "Horário fora do expediente.",
	CodeSlotOccupied:      "Este horário acabou de ser reservado.",

	CodeAppointmentNotFound:       "Agendamento não encontrado.",
	CodeAppointmentInPast:         "O agendamento já começou ou passou.",
	CodeAppointmentNotCancellable: "O agendamento não pode mais ser cancelado.",
	CodeAppointmentNotMarkable:    "O agendamento não pode ser marcado como falta.",
	CodeAppointmentNotStarted:     "O horário do agendamento ainda não passou.",
	CodeCancellationReasonMissing: "Informe o motivo do cancelamento.",

	CodeAbsenceConflict: "Há agendamentos confirmados nesse período.",

	CodeUnauthorized:  "Você não tem permissão para esta operação.",
	CodeGuestNotFound: "Reserva não encontrada para este código de acesso.",

	CodeBarberNotFound:    "Barbeiro não encontrado.",
	CodeServiceNotFound:   "Serviço não encontrado.",
	CodeServiceNotOffered: "Este barbeiro não realiza este serviço.",
	CodeInvalidDateOrTime: "Data ou hora inválida.",
	CodeInvalidPhone:      "Telefone inválido.",
}

var statuses = map[string]int{
	CodeSlotInPast:        http.StatusBadRequest,
	CodeShopClosed:        http.StatusBadRequest,
	CodeBarberUnavailable: http.StatusBadRequest,
	CodeSlotUnavailable:   http.StatusBadRequest,
	CodeSlotOccupied:      http.StatusConflict,

	CodeAppointmentNotFound:       http.StatusNotFound,
	CodeAppointmentInPast:         http.StatusBadRequest,
	CodeAppointmentNotCancellable: http.StatusConflict,
	CodeAppointmentNotMarkable:    http.StatusConflict,
	CodeAppointmentNotStarted:     http.StatusBadRequest,
	CodeCancellationReasonMissing: http.StatusBadRequest,

	CodeAbsenceConflict: http.StatusConflict,

	CodeUnauthorized:  http.StatusForbidden,
	CodeGuestNotFound: http.StatusNotFound,

	CodeBarberNotFound:    http.StatusNotFound,
	CodeServiceNotFound:   http.StatusNotFound,
	CodeServiceNotOffered: http.StatusBadRequest,
	CodeInvalidDateOrTime: http.StatusBadRequest,
	CodeInvalidPhone:      http.StatusBadRequest,
}

// WriteError maps a core error to its HTTP shape. Anything that is not a
// named business error degrades to a generic internal error so storage
// details never reach the caller.
func WriteError(c *gin.Context, err error) {
	code := BusinessCode(err)
	if code == "" {
		Internal(c, "internal_error", "Algo deu errado. Tente novamente.")
		return
	}

	status, ok := statuses[code]
	if !ok {
		status = http.StatusBadRequest
	}
	msg, ok := messages[code]
	if !ok {
		msg = "Operação inválida."
	}
	Write(c, status, code, msg)
}
