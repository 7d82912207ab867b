package k8s

import (
	"errors"
	"fmt"
	"os/exec"
)

// LookPathFunc allows overriding exec.LookPath for testing.
var LookPathFunc = exec.LookPath

var errNoPodName = errors.New("exec: nom de pod manquant")

// BuildExecCmd builds an exec.Cmd to shell into a container using oc or
// kubectl. An empty containerName lets the tool pick the default container.
func (c *Client) BuildExecCmd(namespace, podName, containerName, shell string) (*exec.Cmd, error) {
	if podName == "" {
		return nil, errNoPodName
	}
	tool, err := findExecTool()
	if err != nil {
		return nil, err
	}
	if namespace == "" {
		namespace = c.namespace
	}

	args := []string{"exec", "-it", "-n", namespace, podName}
	if containerName != "" {
		args = append(args, "-c", containerName)
	}
	args = append(args, "--", shell)

	return exec.Command(tool, args...), nil
}

func findExecTool() (string, error) {
	if path, err := LookPathFunc("oc"); err == nil {
		return path, nil
	}
	if path, err := LookPathFunc("kubectl"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("ni 'oc' ni 'kubectl' trouvé dans le PATH")
}
