package field

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

//go:embed shaders/advect.wgsl
var advectShaderSource string

var (
	advectOnce  sync.Once
	advectWords []uint32
	advectErr   error
)

// AdvectionShaderWGSL returns the WGSL source of the particle advection
// compute shader. Hosts whose backends consume WGSL directly can feed
// this to their pipeline; SPIR-V backends use CompileAdvectionShader.
func AdvectionShaderWGSL() string {
	return advectShaderSource
}

// CompileAdvectionShader compiles the advection shader to SPIR-V words.
// The first call compiles; later calls return the cached result. The
// returned slice is shared and must not be modified.
func CompileAdvectionShader() ([]uint32, error) {
	advectOnce.Do(func() {
		advectWords, advectErr = compileWGSL(advectShaderSource)
	})
	if advectErr != nil {
		return nil, advectErr
	}
	return advectWords, nil
}

// compileWGSL compiles WGSL source and packs the output bytes into
// little-endian SPIR-V words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("field: compile shader: %w", err)
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
