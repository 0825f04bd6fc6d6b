/**
* Name: 			motivation_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		프로필 업로드(단일/일일), 동기부여 문장 생성(단일/일일)
 */
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"MotivationGenerator/internal/llm"
	"MotivationGenerator/internal/models"
	"MotivationGenerator/internal/ratelimit"
	"MotivationGenerator/internal/storage"
	"MotivationGenerator/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 업로드 파일 최대 크기
const maxUploadBytes = 1 << 20

type Gate interface {
	Gate(op string) (time.Time, error)
}

type Store interface {
	Save(folder, prefix, ext string, data []byte) (string, error)
	Latest(folder, prefix, ext string) (string, error)
	Allocate(folder, prefix, ext string) (string, error)
	Release(path string)
}

type Pipeline interface {
	Run(ctx context.Context, inputPath, outputPath string, variant models.Variant) (models.GenerationResult, error)
}

type MotivationHandler struct {
	gate      Gate
	store     Store
	validator *validation.Validator
	pipeline  Pipeline
	variants  map[string]models.Variant
	logger    *zap.Logger
}

func NewMotivationHandler(gate Gate, store Store, validator *validation.Validator, pipeline Pipeline, variants map[string]models.Variant, logger *zap.Logger) *MotivationHandler {
	return &MotivationHandler{
		gate:      gate,
		store:     store,
		validator: validator,
		pipeline:  pipeline,
		variants:  variants,
		logger:    logger,
	}
}

type UploadResponse struct {
	Status        string             `json:"status" example:"ok"`
	Filename      string             `json:"filename" example:"profile.json"`
	SavedPath     string             `json:"saved_path" example:"Inputs_Outputs/inputs/input3.json"`
	ValidatedData models.UserProfile `json:"validated_data"`
}

type GenerateResponse struct {
	Status     string `json:"status" example:"ok"`
	OutputFile string `json:"output_file" example:"Inputs_Outputs/outputs/output3.json"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"에러 원인 및 설명"`
	Details any    `json:"details,omitempty"`
}

// UploadInput godoc
// @Summary      프로필 업로드 (단일)
// @Description  user_info 객체를 담은 JSON 파일을 검증 후 inputs 폴더에 저장합니다. 60초에 한 번만 허용됩니다.
// @Tags         Motivation
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "{\"user_info\": {...}} 형식의 JSON 파일"
// @Success      200 {object} handler.UploadResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /motivation/input [post]
func (h *MotivationHandler) UploadInput(c *gin.Context) {
	h.upload(c, h.variants[models.VariantSingle], "input upload")
}

// UploadDailyInput godoc
// @Summary      프로필 업로드 (일일)
// @Description  일일 문장용 프로필을 검증 후 daily_inputs 폴더에 저장합니다. emotional_state는 무시됩니다.
// @Tags         Motivation
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "{\"user_info\": {...}} 형식의 JSON 파일"
// @Success      200 {object} handler.UploadResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /motivation/input_daily [post]
func (h *MotivationHandler) UploadDailyInput(c *gin.Context) {
	h.upload(c, h.variants[models.VariantDaily], "daily input upload")
}

// Generate godoc
// @Summary      동기부여 문장 생성 (단일)
// @Description  가장 최근에 업로드된 프로필로 문장을 생성해 outputs 폴더에 저장합니다.
// @Tags         Motivation
// @Produce      json
// @Success      200 {object} handler.GenerateResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /motivation/generate [get]
func (h *MotivationHandler) Generate(c *gin.Context) {
	h.generate(c, h.variants[models.VariantSingle])
}

// GenerateDaily godoc
// @Summary      동기부여 문장 생성 (일일)
// @Description  가장 최근의 일일 프로필로 문장을 생성해 daily_outputs 폴더에 저장합니다.
// @Tags         Motivation
// @Produce      json
// @Success      200 {object} handler.GenerateResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /motivation/generate_daily [get]
func (h *MotivationHandler) GenerateDaily(c *gin.Context) {
	h.generate(c, h.variants[models.VariantDaily])
}

func (h *MotivationHandler) upload(c *gin.Context, variant models.Variant, action string) {
	log := h.logger.With(zap.String("op", variant.UploadOp))

	// 게이트는 파일을 읽기 전에 확인
	if !h.pass(c, log, variant.UploadOp, action) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("upload(): no file in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file must be uploaded in the 'file' field"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		log.Error("upload(): failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	defer f.Close()

	contents, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		log.Error("upload(): failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	if len(contents) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "The uploaded file is too large"})
		return
	}

	text := strings.TrimSpace(string(contents))
	if text == "" {
		log.Warn("upload(): empty file content")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "The uploaded file is empty"})
		return
	}

	profile, err := h.validator.ParseUpload([]byte(text), variant)
	if err != nil {
		log.Warn("upload(): validation failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid JSON format or missing required fields",
			Details: validationDetails(err),
		})
		return
	}

	savedPath, err := h.store.Save(variant.InputDir, models.InputPrefix, models.FileExt, []byte(text))
	if err != nil {
		log.Error("upload(): failed to save input", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}

	log.Info("upload(): input saved", zap.String("filename", fileHeader.Filename), zap.String("saved_path", savedPath))
	c.JSON(http.StatusOK, UploadResponse{
		Status:        "ok",
		Filename:      fileHeader.Filename,
		SavedPath:     savedPath,
		ValidatedData: profile,
	})
}

func (h *MotivationHandler) generate(c *gin.Context, variant models.Variant) {
	log := h.logger.With(zap.String("op", variant.GenerateOp))

	if !h.pass(c, log, variant.GenerateOp, "generate") {
		return
	}

	inputPath, err := h.store.Latest(variant.InputDir, models.InputPrefix, models.FileExt)
	if errors.Is(err, storage.ErrEmpty) {
		log.Warn("generate(): no input files found")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file has been uploaded yet"})
		return
	}
	if err != nil {
		log.Error("generate(): failed to list inputs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}

	outputPath, err := h.store.Allocate(variant.OutputDir, models.OutputPrefix, models.FileExt)
	if err != nil {
		log.Error("generate(): failed to allocate output", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	log.Info("generate(): selected files", zap.String("input", inputPath), zap.String("output", outputPath))

	// 클라이언트 연결이 끊겨도 생성은 끝까지 진행, 시간 제한은 LLM 클라이언트가 담당
	ctx := context.WithoutCancel(c.Request.Context())
	if _, err := h.pipeline.Run(ctx, inputPath, outputPath, variant); err != nil {
		h.store.Release(outputPath)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Generation failed", Details: generationDetails(err)})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Status: "ok", OutputFile: outputPath})
}

// pass writes the 429 response itself when the gate is closed.
func (h *MotivationHandler) pass(c *gin.Context, log *zap.Logger, op, action string) bool {
	_, err := h.gate.Gate(op)
	if err == nil {
		return true
	}
	var rl *ratelimit.RateLimitedError
	if !errors.As(err, &rl) {
		log.Error("pass(): rate gate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return false
	}
	log.Warn("pass(): rate limited", zap.Int("seconds_remaining", rl.SecondsRemaining))
	c.Header("Retry-After", strconv.Itoa(rl.SecondsRemaining))
	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error: fmt.Sprintf("Please wait %d seconds before next %s", rl.SecondsRemaining, action),
	})
	return false
}

func validationDetails(err error) any {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		return ve.Messages()
	}
	return err.Error()
}

func generationDetails(err error) any {
	var sm *llm.SchemaMismatchError
	if errors.As(err, &sm) {
		return gin.H{"reason": err.Error(), "raw_output": sm.Raw}
	}
	var mg *llm.MalformedGenerationError
	if errors.As(err, &mg) {
		return gin.H{"reason": err.Error(), "raw_output": mg.Raw}
	}
	return err.Error()
}
