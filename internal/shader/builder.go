package shader

import "go.uber.org/zap"

// Invalid is the handle Program returns on any failure.
const Invalid int64 = -1

// Builder compiles and links shader programs against a Context.
// It keeps no state between builds; every call creates fresh GL objects.
type Builder struct {
	ctx      Context
	sources  SourceLookup
	reporter Reporter
	log      *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithReporter sets where build failures are reported.
func WithReporter(r Reporter) Option {
	return func(b *Builder) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a builder for ctx that resolves sources through sources.
func New(ctx Context, sources SourceLookup, opts ...Option) *Builder {
	b := &Builder{
		ctx:      ctx,
		sources:  sources,
		reporter: nopReporter{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build loads, compiles and links the vertex and fragment sources named by
// vertexID and fragmentID. Every failure is reported once and returned;
// nothing after the failing step is attempted.
func (b *Builder) Build(vertexID, fragmentID string) (uint32, error) {
	program, err := b.build(vertexID, fragmentID)
	if err != nil {
		b.reporter.Report(err)
		return 0, err
	}
	return program, nil
}

// Program is Build with the error folded into the Invalid sentinel.
func (b *Builder) Program(vertexID, fragmentID string) int64 {
	program, err := b.Build(vertexID, fragmentID)
	if err != nil {
		return Invalid
	}
	return int64(program)
}

func (b *Builder) build(vertexID, fragmentID string) (uint32, error) {
	version := b.ctx.ShadingLanguageVersion()
	es300 := IsES300(version)
	b.log.Debug("building shader program",
		zap.String("vertex", vertexID),
		zap.String("fragment", fragmentID),
		zap.String("glsl", version),
		zap.Bool("es300", es300),
	)

	// Vertex stage
	vertShader, err := b.stage(Vertex, vertexID, es300)
	if err != nil {
		return 0, err
	}
	defer b.ctx.DeleteShader(vertShader)

	// Fragment stage
	fragShader, err := b.stage(Fragment, fragmentID, es300)
	if err != nil {
		return 0, err
	}
	defer b.ctx.DeleteShader(fragShader)

	// Link program
	program := b.ctx.CreateProgram()
	b.ctx.AttachShader(program, vertShader)
	b.ctx.AttachShader(program, fragShader)
	b.ctx.LinkProgram(program)

	if !b.ctx.ProgramLinked(program) {
		log := b.ctx.ProgramInfoLog(program)
		b.ctx.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	b.log.Debug("shader program linked", zap.Uint32("program", program))
	return program, nil
}

// stage resolves, patches and compiles one stage.
func (b *Builder) stage(stage Stage, id string, es300 bool) (uint32, error) {
	src, err := b.sources.Lookup(id)
	if err != nil {
		return 0, &LookupError{Stage: stage, ID: id, Err: err}
	}

	src, err = Preprocess(stage, src, es300)
	if err != nil {
		return 0, err
	}
	return b.compile(stage, id, src)
}

// compile compiles src as a shader of the given stage.
func (b *Builder) compile(stage Stage, id, src string) (uint32, error) {
	if !stage.valid() {
		return 0, &InvalidStageError{Stage: stage}
	}

	shader := b.ctx.CreateShader(stage)
	b.ctx.ShaderSource(shader, src)
	b.ctx.CompileShader(shader)

	if !b.ctx.ShaderCompiled(shader) {
		log := b.ctx.ShaderInfoLog(shader)
		b.ctx.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, ID: id, Log: log, Source: src}
	}

	b.log.Debug("shader compiled",
		zap.Stringer("stage", stage),
		zap.String("id", id),
		zap.Uint32("shader", shader),
	)
	return shader, nil
}
