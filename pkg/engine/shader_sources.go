package engine

// Shared vertex shader: unit cube with texture coordinates
const sceneVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

// Floor and walls
const texturedFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D texture1;

void main() {
    FragColor = texture(texture1, TexCoord);
}
`

// Goal marker and obstacle
const solidFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec4 color;

void main() {
    FragColor = color;
}
`
