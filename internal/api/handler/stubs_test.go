package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
	"github.com/batoolShene/DentalDiagnose/internal/imaging"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	registerFn       func(ctx context.Context, fullName, email string) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, email, newPassword string) error
	updateStatusFn   func(ctx context.Context, userID int64, status domain.Status, actor string) error
	usersByStatusFn  func(ctx context.Context, status domain.Status) ([]*domain.User, error)
	adminDataFn      func(ctx context.Context) (*ports.AdminData, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, fullName, email string) (*domain.User, error) {
	return s.registerFn(ctx, fullName, email)
}

func (s *stubAuthService) CreateUser(context.Context, string, string, string, domain.Role, domain.Status) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) CheckPermission(context.Context, string, ...domain.Role) bool {
	return true
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	return s.updatePasswordFn(ctx, email, newPassword)
}

func (s *stubAuthService) UpdateStatus(ctx context.Context, userID int64, status domain.Status, actor string) error {
	return s.updateStatusFn(ctx, userID, status, actor)
}

func (s *stubAuthService) UsersByStatus(ctx context.Context, status domain.Status) ([]*domain.User, error) {
	return s.usersByStatusFn(ctx, status)
}

func (s *stubAuthService) ActivityLogs(context.Context, int) ([]*domain.ActivityLog, error) {
	return nil, nil
}

func (s *stubAuthService) AdminData(ctx context.Context) (*ports.AdminData, error) {
	return s.adminDataFn(ctx)
}

// stubUploads writes uploads into a test temp dir with predictable names.
type stubUploads struct {
	dir string
}

func (s *stubUploads) Dir() string { return s.dir }

func (s *stubUploads) Save(r io.Reader, name string) (string, string, error) {
	return s.write(r, "saved_"+name)
}

func (s *stubUploads) SaveRaw(r io.Reader, name string) (string, string, error) {
	return s.write(r, name)
}

func (s *stubUploads) write(r io.Reader, name string) (string, string, error) {
	path := filepath.Join(s.dir, name)
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", err
	}
	return name, path, nil
}

type stubPipeline struct {
	enhanceFn  func(inputPath, outputDir string) (string, error)
	colorizeFn func(inputPath, outputDir string) (string, error)
	cavitiesFn func(inputPath, outputDir string) (string, *imaging.CavityResult, error)
	missingFn  func(inputPath, outputDir string) (string, *imaging.MissingTeethResult, error)
}

func (s *stubPipeline) Enhance(inputPath, outputDir string) (string, error) {
	return s.enhanceFn(inputPath, outputDir)
}

func (s *stubPipeline) Colorize(inputPath, outputDir string) (string, error) {
	return s.colorizeFn(inputPath, outputDir)
}

func (s *stubPipeline) DetectCavities(inputPath, outputDir string) (string, *imaging.CavityResult, error) {
	return s.cavitiesFn(inputPath, outputDir)
}

func (s *stubPipeline) DetectMissingTeeth(inputPath, outputDir string) (string, *imaging.MissingTeethResult, error) {
	return s.missingFn(inputPath, outputDir)
}

type stubProcessingLog struct {
	entries []domain.ProcessingEntry
}

func (s *stubProcessingLog) Append(_ context.Context, entry domain.ProcessingEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubProcessingLog) Recent(context.Context) ([]domain.ProcessingEntry, error) {
	return s.entries, nil
}

type stubClassifier struct {
	analyzeFn func(inputPath, outputDir string) (string, []domain.ConditionFinding, error)
}

func (s *stubClassifier) Analyze(inputPath, outputDir string) (string, []domain.ConditionFinding, error) {
	return s.analyzeFn(inputPath, outputDir)
}

type stubXray struct {
	predictFn func(data []byte) (*domain.XrayPrediction, error)
}

func (s *stubXray) PredictBytes(data []byte) (*domain.XrayPrediction, error) {
	return s.predictFn(data)
}

// multipartImage builds a request carrying one "image" form file.
func multipartImage(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

// writeArtifactFile drops a fake artifact where a transform stub can point to.
func writeArtifactFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}
