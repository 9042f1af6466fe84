package apiErrors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError representa um erro devolvido pelo backend, já normalizado
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody cobre os formatos de corpo de erro que o backend devolve.
// O contrato ideal seria um único campo message; enquanto o backend não
// garante isso, o fallback multi-campo fica isolado aqui.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Err     string `json:"error"`
}

// FromResponse normaliza um corpo de erro não-2xx em um APIError.
// Corpo não-JSON ou sem campo conhecido cai na mensagem derivada do status.
func FromResponse(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: statusMessage(status),
	}

	if len(body) == 0 {
		return apiErr
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	switch {
	case parsed.Detail != "":
		apiErr.Message = parsed.Detail
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	case parsed.Err != "":
		apiErr.Message = parsed.Err
	}

	return apiErr
}

func statusMessage(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "Recurso no encontrado"
	case status == http.StatusForbidden:
		return "No tienes permiso para esta acción"
	case status >= http.StatusInternalServerError:
		return "Error interno del servidor"
	default:
		return fmt.Sprintf("Error en la solicitud (HTTP %d)", status)
	}
}
