package scene

// Shader sources for the distortion pass. The fragment shader must stay in
// lockstep with the reference math in distortion.go.

// Vertex shader for the fullscreen quad
const quadVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
`

// Fragment shader applying radial distortion and vignette shading
const distortFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D sceneTexture;
uniform float k;
uniform float kcube;

void main() {
    vec2 c = TexCoord - 0.5;
    float r2 = dot(c, c);
    float f = 1.0 + r2 * (k + kcube * sqrt(r2));
    vec2 src = f * c + 0.5;

    // Samples that leave the source image are a hard black cutoff,
    // not clamped or wrapped.
    if (src.x < 0.0 || src.x > 1.0 || src.y < 0.0 || src.y > 1.0) {
        FragColor = vec4(0.0, 0.0, 0.0, 1.0);
        return;
    }

    vec4 color = texture(sceneTexture, src);
    float vignette = mix(0.85, 1.0, smoothstep(0.9, 0.2, r2));
    FragColor = vec4(color.rgb * vignette, 1.0);
}
`
