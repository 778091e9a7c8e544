package chemistry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/intelligence/common"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// ---------------------------------------------------------------------------
// Remote chemistry service client
// ---------------------------------------------------------------------------

// RemoteServiceConfig configures the cheminformatics sidecar client.
type RemoteServiceConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	TimeoutMs int64  `json:"timeout_ms" yaml:"timeout_ms"`
}

// RemoteService talks to the cheminformatics sidecar that performs RDKit-class
// work: featurization, ADMET profiling, and pharmacophore detection.  It
// implements Featurizer, ADMETCalculator, and PharmacophoreDetector.
type RemoteService struct {
	endpoint string
	client   *http.Client
	logger   common.Logger
}

// NewRemoteService creates a client for the chemistry sidecar.
func NewRemoteService(cfg RemoteServiceConfig, logger common.Logger) (*RemoteService, error) {
	if cfg.Endpoint == "" {
		return nil, errors.InvalidParam("chemistry service endpoint is required")
	}
	if logger == nil {
		logger = common.NewNoopLogger()
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteService{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Featurize implements Featurizer.
func (s *RemoteService) Featurize(ctx context.Context, smiles, targetSequence string) (*PairGraph, error) {
	var graph PairGraph
	payload := map[string]string{"smiles": smiles, "target_sequence": targetSequence}
	if err := s.post(ctx, "/featurize", payload, &graph); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeFeaturizationFailed, "featurization failed")
	}
	return &graph, nil
}

// Calculate implements ADMETCalculator.
func (s *RemoteService) Calculate(ctx context.Context, smiles string) (*candidate.ADMETProperties, error) {
	var props candidate.ADMETProperties
	if err := s.post(ctx, "/admet", map[string]string{"smiles": smiles}, &props); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDescriptorFailed, "ADMET calculation failed")
	}
	return &props, nil
}

// DetectActiveSites implements PharmacophoreDetector.
func (s *RemoteService) DetectActiveSites(ctx context.Context, smiles string) ([]candidate.ActiveSite, error) {
	var sites []candidate.ActiveSite
	if err := s.post(ctx, "/pharmacophores", map[string]string{"smiles": smiles}, &sites); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodePharmacophoreFailed, "pharmacophore detection failed")
	}
	return sites, nil
}

// Healthy probes the sidecar's health endpoint.
func (s *RemoteService) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "chemistry service unreachable")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrCodeExternalService, "chemistry service unhealthy: HTTP %d", resp.StatusCode)
	}
	return nil
}

func (s *RemoteService) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "chemistry service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.New(errors.ErrCodeExternalService,
			fmt.Sprintf("chemistry service %s: HTTP %d: %s", path, resp.StatusCode, string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "decoding response")
	}
	return nil
}
