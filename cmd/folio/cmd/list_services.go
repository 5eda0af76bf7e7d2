package cmd

import (
	"fmt"
	"go/constant"
	"go/types"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

// listServicesCmd represents the list-services command
var listServicesCmd = &cobra.Command{
	Use:   "list-services",
	Short: "Lists all services registered under a registry key",
	Long: `Type-checks the module and reports every constant or variable of type
registry.Key[T], which is how services are named in the dependency registry.
Run it from the repository root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := findRegistryKeys("./")
		if err != nil {
			return fmt.Errorf("failed to find registry keys: %w", err)
		}

		if len(services) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No services found in the registry.")
			return nil
		}

		printServices(cmd.OutOrStdout(), services)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listServicesCmd)
}

type ServiceInfo struct {
	Key  string
	Type string
}

// registryKeyInfo reports whether obj is a registry.Key constant or variable
// and describes it.
func registryKeyInfo(obj types.Object) (ServiceInfo, bool) {
	named, ok := obj.Type().(*types.Named)
	if !ok || named.Obj().Name() != "Key" || named.Obj().Pkg() == nil ||
		!strings.HasSuffix(named.Obj().Pkg().Path(), "internal/registry") {
		return ServiceInfo{}, false
	}

	info := ServiceInfo{Key: obj.Name()}
	if c, ok := obj.(*types.Const); ok && c.Val().Kind() == constant.String {
		info.Key = constant.StringVal(c.Val())
	}
	if args := named.TypeArgs(); args != nil && args.Len() == 1 {
		info.Type = args.At(0).String()
	}
	return info, true
}

// findRegistryKeys scans the project directory for registry.Key definitions.
func findRegistryKeys(root string) ([]ServiceInfo, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   root,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var services []ServiceInfo
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			if info, ok := registryKeyInfo(scope.Lookup(name)); ok {
				services = append(services, info)
			}
		}
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Key < services[j].Key })
	return services, nil
}

func printServices(out io.Writer, services []ServiceInfo) {
	fmt.Fprintln(out, "Available Services in the Registry:")
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE")
	fmt.Fprintln(w, "---\t----")
	for _, s := range services {
		fmt.Fprintf(w, "%s\t%s\n", s.Key, s.Type)
	}
	w.Flush()
}
