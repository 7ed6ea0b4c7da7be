package resource

import (
	"openglhelper"
)

// GLLoaders returns loaders that build handles with OpenGL.
// A current GL context is required when the loaders run.
func GLLoaders() Loaders {
	return Loaders{
		Shader: func(vertexPath, fragmentPath string) (Shader, error) {
			shader, err := openglhelper.LoadShaderFromFiles(vertexPath, fragmentPath)
			if err != nil {
				return nil, err
			}
			return shader, nil
		},
		Texture: func(path string) (Texture, error) {
			texture, err := openglhelper.LoadTextureFromFile(path)
			if err != nil {
				return nil, err
			}
			return texture, nil
		},
		Model: func(path string) (Model, error) {
			model, err := openglhelper.LoadModelFromFile(path)
			if err != nil {
				return nil, err
			}
			return model, nil
		},
	}
}
