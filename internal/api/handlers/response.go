package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "Unexpected server error"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// UpstreamErrorResponse ошибка внешнего сервиса, тело ответа передается как есть
type UpstreamErrorResponse struct {
	OK    bool        `json:"ok"`
	Error interface{} `json:"error"`
}

// DataResponse {ok:true,data} с ответом внешнего сервиса
type DataResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
}

// OKResponse тело успешного ответа без данных
type OKResponse struct {
	OK bool `json:"ok"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondOK отправляет {ok:true}
func RespondOK(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, OKResponse{OK: true})
}

// RespondError отправляет {ok:false,error} с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{OK: false, Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
