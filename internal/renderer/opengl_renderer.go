package renderer

import (
	"fmt"
	"strings"

	"Attirra/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type OpenGLRenderer struct {
	defaultShader        Shader
	Models               []*Model
	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches
}

func (rend *OpenGLRenderer) Init(width, height int32) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}

	gl.Viewport(0, 0, width, height)
	rend.InitShader()
	logger.Log.Info("OpenGL render initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
}

func (rend *OpenGLRenderer) InitShader() {
	rend.defaultShader = InitShader()
	rend.defaultShader.Compile()
}

// AddModel uploads the model's geometry and schedules it for drawing.
// Adding a model twice is a no-op.
func (rend *OpenGLRenderer) AddModel(model *Model) {
	if model == nil || model.disposed {
		return
	}
	for _, m := range rend.Models {
		if m == model {
			return
		}
	}
	if !model.uploaded {
		upload(model)
	}
	model.updateModelMatrix()
	rend.Models = append(rend.Models, model)
}

func upload(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(model.InterleavedData) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)
	}

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	if len(model.Faces) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)
	}

	stride := int32((8) * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo
	model.uploaded = true
}

// RemoveModel stops drawing the model and releases its GPU buffers.
func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
	release(model)
}

func release(model *Model) {
	if model == nil || !model.uploaded {
		return
	}
	gl.DeleteVertexArrays(1, &model.VAO)
	gl.DeleteBuffers(1, &model.VBO)
	gl.DeleteBuffers(1, &model.EBO)
	model.VAO, model.VBO, model.EBO = 0, 0, 0
	model.uploaded = false
}

func (rend *OpenGLRenderer) Render(camera *Camera, lights []*Light) {
	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	// Set every frame, the UI pass forces fill mode.
	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	shader := &rend.defaultShader
	if rend.currentShaderProgram != shader.program {
		shader.Use()
		rend.currentShaderProgram = shader.program
	}

	shader.SetMat4("viewProjection", camera.GetViewProjection())
	shader.SetVec3("viewPos", camera.Position)
	setLightUniforms(shader, lights)

	// Opaque first, then anything mid-fade with depth writes off so it
	// blends over what is already drawn.
	var fading []*Model
	for _, model := range rend.Models {
		if model.disposed {
			continue
		}
		if model.Alpha() < 1 {
			fading = append(fading, model)
			continue
		}
		rend.drawModel(shader, model)
	}
	if len(fading) > 0 {
		gl.DepthMask(false)
		for _, model := range fading {
			rend.drawModel(shader, model)
		}
		gl.DepthMask(true)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	// Overlays such as the GUI may switch programs between frames.
	rend.currentShaderProgram = 0
}

func setLightUniforms(shader *Shader, lights []*Light) {
	shader.SetFloat("hemiIntensity", 0)
	shader.SetFloat("dirIntensity", 0)
	for _, light := range lights {
		if light == nil {
			continue
		}
		switch light.Mode {
		case HemisphereLight:
			shader.SetVec3("hemiSkyColor", light.Color)
			shader.SetVec3("hemiGroundColor", light.GroundColor)
			shader.SetFloat("hemiIntensity", light.Intensity)
		case DirectionalLight:
			shader.SetVec3("dirDirection", light.Direction)
			shader.SetVec3("dirColor", light.Color)
			shader.SetFloat("dirIntensity", light.Intensity)
		}
	}
}

func (rend *OpenGLRenderer) drawModel(shader *Shader, model *Model) {
	if model.IsDirty {
		model.updateModelMatrix()
		model.IsDirty = false
	}
	shader.SetMat4("model", model.ModelMatrix)
	gl.BindVertexArray(model.VAO)

	if len(model.MaterialGroups) == 0 {
		material := model.Material
		if material == nil {
			material = DefaultMaterial
		}
		if material.disposed {
			return
		}
		setMaterialUniforms(shader, material)
		gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
		return
	}

	for _, group := range model.MaterialGroups {
		material := group.Material
		if material == nil {
			material = DefaultMaterial
		}
		if material.disposed || group.IndexCount == 0 {
			continue
		}
		setMaterialUniforms(shader, material)
		gl.DrawElementsWithOffset(gl.TRIANGLES, group.IndexCount, gl.UNSIGNED_INT, uintptr(group.IndexStart*4))
	}
}

func setMaterialUniforms(shader *Shader, material *Material) {
	shader.SetVec3("diffuseColor", mgl32.Vec3(material.DiffuseColor))
	shader.SetVec3("specularColor", mgl32.Vec3(material.SpecularColor))
	shader.SetFloat("shininess", material.Shininess)
	shader.SetFloat("metallic", material.Metallic)
	shader.SetFloat("roughness", material.Roughness)
	shader.SetFloat("alpha", material.Alpha)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		release(model)
	}
	rend.Models = nil
	rend.defaultShader.Delete()
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile", zap.Uint32("shader type:", shaderType), zap.String("log", log))
	} else {
		shaderTypeName := "VERTEX"
		if shaderType == gl.FRAGMENT_SHADER {
			shaderTypeName = "FRAGMENT"
		}
		logger.Log.Debug(fmt.Sprintf("%s shader compiled", shaderTypeName))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	} else {
		logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
