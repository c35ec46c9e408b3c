package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/config"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/export"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/layout"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/seed"
)

// snapshot 是计算布局的输入
type snapshot struct {
	Date         string
	Settings     *domain.GridSettings
	Staff        []*domain.StaffMember
	Appointments []*domain.Appointment
}

// snapshotFile 是 --input 文件的格式，缺省字段使用配置中的值
type snapshotFile struct {
	Date         string                `json:"date"`
	Settings     *domain.GridSettings  `json:"settings"`
	Staff        []staffInput          `json:"staff"`
	Appointments []*domain.Appointment `json:"appointments"`
}

// staffInput 中没有写 isActive 的员工视为在职
type staffInput struct {
	domain.StaffMember
	IsActive *bool `json:"isActive"`
}

func parsePolicy(s string) (domain.SlotPolicy, error) {
	switch p := domain.SlotPolicy(s); p {
	case domain.SlotPolicyClip, domain.SlotPolicyOvershoot:
		return p, nil
	default:
		return "", fmt.Errorf("无效的刻度策略 %q，只能是 clip 或 overshoot", s)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "无法加载配置:", err)
		os.Exit(1)
	}

	var policy string

	root := &cobra.Command{
		Use:          "grid",
		Short:        "计算日程表的时间刻度和布局",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&policy, "policy", cfg.Grid.SlotPolicy, "刻度策略 (clip 或 overshoot)")

	root.AddCommand(slotsCommand(cfg, &policy), layoutCommand(cfg, &policy))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parameters(cfg *config.Config) *layout.Parameters {
	return &layout.Parameters{
		HourHeightPx:  cfg.Grid.HourHeightPx,
		ColumnWidthPx: cfg.Grid.ColumnWidthPx,
	}
}

func slotsCommand(cfg *config.Config, policy *string) *cobra.Command {
	var start, end string
	var slot int32

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "打印时间刻度",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolicy(*policy)
			if err != nil {
				return err
			}
			engine, err := layout.New(parameters(cfg), &domain.GridSettings{
				StartTime:   start,
				EndTime:     end,
				SlotMinutes: slot,
				SlotPolicy:  p,
			})
			if err != nil {
				return err
			}

			for _, s := range engine.SlotLabels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", s.Label, s.Top)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", cfg.Grid.StartTime, "开始时间 HH:MM")
	cmd.Flags().StringVar(&end, "end", cfg.Grid.EndTime, "结束时间 HH:MM")
	cmd.Flags().Int32Var(&slot, "slot", cfg.Grid.SlotMinutes, "时间间隔（分钟）")

	return cmd
}

func layoutCommand(cfg *config.Config, policy *string) *cobra.Command {
	var input, xlsxPath string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "计算某一天的日程布局，输出 JSON 或 xlsx",
		Long:  "从 --input 指定的 JSON 文件读取员工和预约；未指定时使用演示数据",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolicy(*policy)
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cfg, input)
			if err != nil {
				return err
			}

			settings := *snap.Settings
			settings.SlotPolicy = p
			engine, err := layout.New(parameters(cfg), &settings)
			if err != nil {
				return err
			}
			l := engine.Compute(snap.Staff, snap.Appointments)

			if xlsxPath != "" {
				return writeXLSX(xlsxPath, l, snap.Date)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(l)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON 文件路径，- 表示标准输入")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "写入 xlsx 文件而不是输出 JSON")

	return cmd
}

// writeXLSX 需要检查 Close 的错误，否则写入失败时会留下一个不完整的文件而不报错
func writeXLSX(path string, l *layout.Layout, date string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return export.WriteXLSX(f, l, date)
}

func loadSnapshot(cfg *config.Config, input string) (*snapshot, error) {
	if input == "" {
		repo := repository.NewRepository(cfg)
		date := time.Now().Format(time.DateOnly)
		if err := seed.SeedMockData(repo, date); err != nil {
			return nil, err
		}
		day := repo.GetDaySnapshot(date)
		return &snapshot{
			Date:         date,
			Settings:     &day.Settings,
			Staff:        day.Staff,
			Appointments: day.Appointments,
		}, nil
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return decodeSnapshot(cfg, r, input)
}

func decodeSnapshot(cfg *config.Config, r io.Reader, name string) (*snapshot, error) {
	var file snapshotFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("无法解析 %s: %w", name, err)
	}

	snap := &snapshot{
		Date:         file.Date,
		Settings:     file.Settings,
		Staff:        make([]*domain.StaffMember, 0, len(file.Staff)),
		Appointments: file.Appointments,
	}
	for _, in := range file.Staff {
		member := in.StaffMember
		member.IsActive = in.IsActive == nil || *in.IsActive
		snap.Staff = append(snap.Staff, &member)
	}

	if snap.Settings == nil {
		snap.Settings = &domain.GridSettings{
			StartTime:   cfg.Grid.StartTime,
			EndTime:     cfg.Grid.EndTime,
			SlotMinutes: cfg.Grid.SlotMinutes,
		}
	}
	if snap.Date == "" {
		snap.Date = time.Now().Format(time.DateOnly)
	}
	for i, member := range snap.Staff {
		snap.Staff[i] = member.OnDate(snap.Date)
	}

	return snap, nil
}
