package handlers

import (
	"github.com/experience-marketplace/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MetaChannelKind struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedCategories = []MetaCategory{
	{ID: "restaurant", Label: "맛집"},
	{ID: "cafe", Label: "카페/디저트"},
	{ID: "beauty", Label: "뷰티"},
	{ID: "accommodation", Label: "숙박"},
	{ID: "delivery", Label: "배달"},
	{ID: "living", Label: "생활"},
	{ID: "culture", Label: "문화"},
	{ID: "digital", Label: "디지털"},
	{ID: "pet", Label: "반려동물"},
	{ID: "other", Label: "기타"},
}

var predefinedChannelKinds = []MetaChannelKind{
	{ID: "blog", Label: "블로그"},
	{ID: "video", Label: "동영상"},
	{ID: "photo", Label: "사진"},
	{ID: "micro", Label: "마이크로 블로그"},
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedCategories})
}

func (h *MetaHandler) GetChannelKinds(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedChannelKinds})
}
