package main

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestHealthPayload(t *testing.T) {
	// Store trả lời và đã có dữ liệu
	status, body := healthPayload(true, nil)
	if status != fiber.StatusOK {
		t.Errorf("Store khỏe phải trả 200, nhận %d", status)
	}
	if body["status"] != "ok" || body["dataReady"] != true {
		t.Errorf("Body phải báo ok và dataReady=true, nhận %v", body)
	}

	// Store trả lời nhưng collection còn rỗng: server vẫn sống, chỉ chưa seed
	status, body = healthPayload(false, nil)
	if status != fiber.StatusOK {
		t.Errorf("Chưa seed dữ liệu vẫn phải trả 200, nhận %d", status)
	}
	if body["dataReady"] != false {
		t.Errorf("Chưa seed thì dataReady phải là false, nhận %v", body)
	}

	// Store không trả lời được
	status, body = healthPayload(false, errors.New("connection refused"))
	if status != fiber.StatusServiceUnavailable {
		t.Errorf("Store lỗi phải trả 503, nhận %d", status)
	}
	if body["status"] != "degraded" {
		t.Errorf("Store lỗi phải báo degraded, nhận %v", body)
	}
}
