package opengl

// Both vertex shaders place a [-1, 1] quad with pos * scale + offset; the
// scale and offset come from tileview.Transform.

const tilesetVertexShader = `
#version 410 core
layout (location = 0) in vec2 pos;
layout (location = 1) in vec2 tcoords;

out vec2 vtcoords;

uniform vec2 scale;
uniform float offset;

void main() {
    gl_Position = vec4(pos * scale + vec2(0.0, offset), 0.0, 1.0);
    vtcoords = tcoords;
}
`

const tilesetFragmentShader = `
#version 410 core
in vec2 vtcoords;

out vec4 fcolor;

uniform sampler2D texture0;

void main() {
    fcolor = texture(texture0, vtcoords);
}
`

const rectangleVertexShader = `
#version 410 core
layout (location = 0) in vec2 pos;
layout (location = 1) in vec4 color;

out vec4 vcolor;

uniform vec2 scale;
uniform float offset;

void main() {
    gl_Position = vec4(pos * scale + vec2(0.0, offset), 0.0, 1.0);
    vcolor = color;
}
`

const rectangleFragmentShader = `
#version 410 core
in vec4 vcolor;

out vec4 fcolor;

void main() {
    fcolor = vcolor;
}
`
