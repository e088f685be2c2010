package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("AppPort default: got %d", cfg.AppPort)
	}
	if cfg.DBPath != "./tomato_doctor.db" {
		t.Errorf("DBPath default: got %q", cfg.DBPath)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("UploadDir default: got %q", cfg.UploadDir)
	}
	if cfg.InferenceURL != "http://localhost:8501/v1/models/tomato_leaf:predict" {
		t.Errorf("InferenceURL default: got %q", cfg.InferenceURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("UPLOAD_DIR", "/tmp/artifacts")
	t.Setenv("PREDICT_RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.AppPort != 9000 {
		t.Errorf("AppPort: got %d", cfg.AppPort)
	}
	if cfg.UploadDir != "/tmp/artifacts" {
		t.Errorf("UploadDir: got %q", cfg.UploadDir)
	}
	if cfg.PredictRateLimitRPS != 0.5 {
		t.Errorf("PredictRateLimitRPS: got %f", cfg.PredictRateLimitRPS)
	}
}
