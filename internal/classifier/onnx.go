package classifier

import (
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/dtroode/gourmet-server/internal/model"
)

var (
	initOnce sync.Once
	initErr  error
)

// InitRuntime loads the ONNX Runtime shared library. It is safe to call
// more than once; only the first call has an effect.
func InitRuntime(libraryPath string) error {
	initOnce.Do(func() {
		if libraryPath != "" {
			ort.SetSharedLibraryPath(libraryPath)
		}
		initErr = ort.InitializeEnvironment()
	})
	return initErr
}

// ShutdownRuntime releases the ONNX Runtime environment.
func ShutdownRuntime() error {
	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// ONNXRuntime is a Runtime backed by an ONNX Runtime session with
// preallocated input and output tensors. Runs are serialized.
type ONNXRuntime struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// NewONNXFactory returns a RuntimeFactory creating sessions with the given
// tensor names.
func NewONNXFactory(inputName, outputName string) RuntimeFactory {
	return func(modelData []byte) (Runtime, error) {
		return NewONNXRuntime(modelData, inputName, outputName)
	}
}

func NewONNXRuntime(modelData []byte, inputName, outputName string) (*ONNXRuntime, error) {
	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, InputSize, InputSize, InputChannels))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(model.CategoryCount)))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSessionWithONNXData(modelData,
		[]string{inputName}, []string{outputName},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &ONNXRuntime{
		session: session,
		input:   input,
		output:  output,
	}, nil
}

func (r *ONNXRuntime) Run(input []float32) ([]float32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dst := r.input.GetData()
	if len(input) != len(dst) {
		return nil, fmt.Errorf("input has %d values, model expects %d", len(input), len(dst))
	}
	copy(dst, input)

	if err := r.session.Run(); err != nil {
		return nil, err
	}

	out := make([]float32, len(r.output.GetData()))
	copy(out, r.output.GetData())
	return out, nil
}

func (r *ONNXRuntime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.session != nil {
		errs = append(errs, r.session.Destroy())
		r.session = nil
	}
	if r.input != nil {
		errs = append(errs, r.input.Destroy())
		r.input = nil
	}
	if r.output != nil {
		errs = append(errs, r.output.Destroy())
		r.output = nil
	}
	return errors.Join(errs...)
}
