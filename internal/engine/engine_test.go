package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_BuildArgs(t *testing.T) {
	fake := newFakeRunner()
	e := NewWithRunner("docker", false, fake)

	err := e.Build(context.Background(), "pydock-ds:latest", "/store/envs/ds/dockerfile", "/store/envs/ds")
	require.NoError(t, err)

	require.Len(t, fake.callLines(), 1)
	assert.Equal(t,
		"docker build -t pydock-ds:latest -f /store/envs/ds/dockerfile /store/envs/ds",
		fake.callLines()[0])
}

func TestEngine_SudoPrefix(t *testing.T) {
	fake := newFakeRunner()
	e := NewWithRunner("docker", true, fake)

	err := e.Tag(context.Background(), "abc123", "pydock-ds:latest")
	require.NoError(t, err)

	assert.Equal(t, "sudo docker tag abc123 pydock-ds:latest", fake.callLines()[0])
}

func TestEngine_RunArgs(t *testing.T) {
	fake := newFakeRunner()
	e := NewWithRunner("docker", false, fake)

	err := e.Run(context.Background(), RunOptions{
		Image:       "pydock-ds:latest",
		Remove:      true,
		Interactive: true,
		User:        "1000",
		Hostname:    "ds",
		Volumes:     []string{"/work/proj:/home/alice/proj"},
		WorkDir:     "/home/alice/proj",
		Cmd:         []string{"bash"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"docker run --rm -it --user 1000 --hostname ds -v /work/proj:/home/alice/proj -w /home/alice/proj pydock-ds:latest bash",
		fake.callLines()[0])
}

func TestEngine_RunNamedContainer(t *testing.T) {
	fake := newFakeRunner()
	e := NewWithRunner("podman", false, fake)

	err := e.Run(context.Background(), RunOptions{
		Image: "pydock-ds:latest",
		Name:  "pydock-ds-install",
		User:  "1000",
		Cmd:   []string{"bash", "-c", "pip install requests && pip freeze > ~/requirements.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"podman run --name pydock-ds-install --user 1000 pydock-ds:latest bash -c pip install requests && pip freeze > ~/requirements.txt",
		fake.callLines()[0])
}

func TestEngine_CommitStripsDigestPrefix(t *testing.T) {
	fake := newFakeRunner()
	fake.stub("docker commit pydock-ds-install", "sha256:deadbeefcafe", nil)
	e := NewWithRunner("docker", false, fake)

	id, err := e.Commit(context.Background(), "pydock-ds-install")
	require.NoError(t, err)
	assert.Equal(t, "deadbeefcafe", id)
}

func TestEngine_CommitBareID(t *testing.T) {
	fake := newFakeRunner()
	fake.stub("docker commit pydock-ds-install", "deadbeefcafe", nil)
	e := NewWithRunner("docker", false, fake)

	id, err := e.Commit(context.Background(), "pydock-ds-install")
	require.NoError(t, err)
	assert.Equal(t, "deadbeefcafe", id)
}

func TestEngine_CommitEmptyOutput(t *testing.T) {
	fake := newFakeRunner()
	fake.stub("docker commit pydock-ds-install", "", nil)
	e := NewWithRunner("docker", false, fake)

	_, err := e.Commit(context.Background(), "pydock-ds-install")
	assert.Error(t, err)
}

func TestEngine_Images(t *testing.T) {
	fake := newFakeRunner()
	fake.stub("docker images --format "+imagesFormat,
		"pydock-ds\tlatest\tabc123\t2 days ago\t1.2GB\n"+
			"pydock-web\tlatest\tdef456\t5 minutes ago\t987MB\n"+
			"python\t3.10\t111222\t3 weeks ago\t915MB",
		nil)
	e := NewWithRunner("docker", false, fake)

	images, err := e.Images(context.Background())
	require.NoError(t, err)

	require.Contains(t, images, "pydock-ds")
	assert.Equal(t, Image{
		Repository: "pydock-ds",
		Tag:        "latest",
		ID:         "abc123",
		Created:    "2 days ago",
		Size:       "1.2GB",
	}, images["pydock-ds"])
	assert.Contains(t, images, "pydock-web")
	assert.Contains(t, images, "python")
}

func TestEngine_ImagesKeepsFirstTag(t *testing.T) {
	fake := newFakeRunner()
	fake.stub("docker images --format "+imagesFormat,
		"pydock-ds\tlatest\tabc123\t2 days ago\t1.2GB\n"+
			"pydock-ds\t<none>\tolder1\t4 days ago\t1.2GB",
		nil)
	e := NewWithRunner("docker", false, fake)

	images, err := e.Images(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", images["pydock-ds"].ID)
}

func TestEngine_RemoveImageForce(t *testing.T) {
	fake := newFakeRunner()
	e := NewWithRunner("docker", false, fake)

	err := e.RemoveImage(context.Background(), "pydock-ds:latest")
	require.NoError(t, err)
	assert.Equal(t, "docker rmi --force pydock-ds:latest", fake.callLines()[0])
}

func TestEngine_ExitErrorPropagates(t *testing.T) {
	fake := newFakeRunner()
	fake.stub("docker build -t pydock-ds:latest -f df ctx", "", &ExitError{Code: 3})
	e := NewWithRunner("docker", false, fake)

	err := e.Build(context.Background(), "pydock-ds:latest", "df", "ctx")
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestDetectRuntime(t *testing.T) {
	// Environment-dependent; just verify it returns a known runtime
	// or the sentinel error.
	runtime, err := DetectRuntime()
	if err != nil {
		assert.ErrorIs(t, err, ErrNoRuntime)
		return
	}
	assert.Contains(t, []string{"docker", "podman"}, runtime)
}
