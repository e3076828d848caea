package opengl

import (
	"fmt"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

// The lit shader pair is templated on the light count so the uniform
// arrays and the shadow lookups always agree with scene.MaxLights and the
// depth-target layer count.

func litVertSrc() string {
	return fmt.Sprintf(litVertTemplate, scene.MaxLights) + "\x00"
}

func litFragSrc() string {
	return fmt.Sprintf(litFragTemplate, scene.MaxLights) + "\x00"
}

const litVertTemplate = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inUV;
layout(location = 2) in vec3 inNormal;
layout(location = 3) in vec3 inTangent;
layout(location = 4) in vec3 inBitangent;

const int LIGHT_COUNT = %d;

uniform mat4 mvp;
uniform mat4 model;
uniform mat4 view;
uniform mat4 depthBiasVP[LIGHT_COUNT];
uniform vec3 lightPosCam[LIGHT_COUNT];
uniform int shadingModel; // 0 = Phong, 1 = Gouraud
uniform sampler2DArrayShadow shadowMaps;

out vec2 vUV;
out vec3 vPositionCam;
out vec3 vNormalCam;
out vec3 vTangentCam;
out vec3 vBitangentCam;
out vec4 vShadowCoord[LIGHT_COUNT];
out vec3 vGouraud;

float shadowVisibility(int i, vec4 sc) {
    vec3 p = sc.xyz / sc.w;
    if (p.x < 0.0 || p.x > 1.0 || p.y < 0.0 || p.y > 1.0 || p.z > 1.0) {
        return 1.0;
    }
    return texture(shadowMaps, vec4(p.xy, float(i), p.z - 0.005));
}

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    gl_Position = mvp * vec4(inPosition, 1.0);
    vUV = inUV;

    vPositionCam = (view * worldPos).xyz;
    mat3 mv3 = mat3(view * model);
    vNormalCam = mv3 * inNormal;
    vTangentCam = mv3 * inTangent;
    vBitangentCam = mv3 * inBitangent;

    for (int i = 0; i < LIGHT_COUNT; i++) {
        vShadowCoord[i] = depthBiasVP[i] * worldPos;
    }

    // Gouraud mode evaluates lighting here, once per vertex. The shadow
    // array has no mip chain, so sampling it from the vertex stage is safe.
    vGouraud = vec3(0.0);
    if (shadingModel == 1) {
        vec3 n = normalize(vNormalCam);
        vec3 e = normalize(-vPositionCam);
        for (int i = 0; i < LIGHT_COUNT; i++) {
            vec3 toLight = lightPosCam[i] - vPositionCam;
            float dist2 = dot(toLight, toLight);
            vec3 l = normalize(toLight);
            float diff = max(dot(n, l), 0.0);
            vec3 h = normalize(l + e);
            float spec = pow(max(dot(n, h), 0.0), 16.0);
            float vis = shadowVisibility(i, vShadowCoord[i]);
            vGouraud += vis * (diff + 0.3 * spec) * 150.0 / dist2;
        }
    }
}
` // null-terminated after templating

const litFragTemplate = `
#version 410 core
const int LIGHT_COUNT = %d;

in vec2 vUV;
in vec3 vPositionCam;
in vec3 vNormalCam;
in vec3 vTangentCam;
in vec3 vBitangentCam;
in vec4 vShadowCoord[LIGHT_COUNT];
in vec3 vGouraud;

uniform vec3 lightPosCam[LIGHT_COUNT];
uniform sampler2DArrayShadow shadowMaps;
uniform sampler2D diffuseTex;
uniform sampler2D normalTex;
uniform sampler2D specularTex;
uniform int shadingModel;
uniform bool useNormalMap;
uniform bool unlit;
uniform float alpha;

out vec4 outColor;

float shadowVisibility(int i) {
    vec4 sc = vShadowCoord[i];
    vec3 p = sc.xyz / sc.w;
    if (p.x < 0.0 || p.x > 1.0 || p.y < 0.0 || p.y > 1.0 || p.z > 1.0) {
        return 1.0;
    }
    return texture(shadowMaps, vec4(p.xy, float(i), p.z - 0.005));
}

void main() {
    vec3 texColor = texture(diffuseTex, vUV).rgb;

    if (unlit) {
        outColor = vec4(texColor, alpha);
        return;
    }

    if (shadingModel == 1) {
        vec3 color = texColor * (0.25 + vGouraud);
        outColor = vec4(color, alpha);
        return;
    }

    vec3 n;
    vec3 specColor;
    if (useNormalMap) {
        mat3 tbn = mat3(normalize(vTangentCam),
                        normalize(vBitangentCam),
                        normalize(vNormalCam));
        n = normalize(tbn * (texture(normalTex, vUV).rgb * 2.0 - 1.0));
        specColor = texture(specularTex, vUV).rgb;
    } else {
        n = normalize(vNormalCam);
        specColor = vec3(0.3);
    }
    vec3 e = normalize(-vPositionCam);

    vec3 color = texColor * 0.25; // ambient
    for (int i = 0; i < LIGHT_COUNT; i++) {
        vec3 toLight = lightPosCam[i] - vPositionCam;
        float dist2 = dot(toLight, toLight);
        vec3 l = normalize(toLight);
        float diff = max(dot(n, l), 0.0);
        vec3 h = normalize(l + e);
        float spec = pow(max(dot(n, h), 0.0), 16.0);
        float vis = shadowVisibility(i);
        color += vis * (texColor * diff + specColor * spec) * 150.0 / dist2;
    }
    outColor = vec4(color, alpha);
}
` // null-terminated after templating

// depth-only pair for the per-light shadow pass
const depthVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 depthMVP;
void main() {
    gl_Position = depthMVP * vec4(inPosition, 1.0);
}
` + "\x00"

const depthFragSrc = `
#version 410 core
void main() {}
` + "\x00"
