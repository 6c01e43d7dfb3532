package cmd

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/jsphweid/tjadex/analysis"
	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/db"
	"github.com/jsphweid/tjadex/file"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/util"
	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"
)

var (
	indexWorkers int
	indexDynamo  bool
)

func init() {
	indexCmd.Flags().IntVarP(&indexWorkers, "workers", "w", runtime.NumCPU(), "files analysed at once")
	indexCmd.Flags().BoolVar(&indexDynamo, "dynamo", false, "also store summaries in DynamoDB")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [dir] [max]",
	Short: "Creates index",
	Long:  `Analyses every course of every .tja file under dir (default $TJA_PATH) and stores the summaries.`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetTJADir()
		if len(args) > 0 {
			dir = args[0]
		}
		var maxNum int
		if len(args) == 2 {
			arg, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg
		}

		entries, err := Index(dir, maxNum)
		if err != nil {
			return err
		}
		if indexDynamo {
			return db.PutSummaries(entries)
		}
		return nil
	},
}

func indexFile(fileNum uint32, path string) ([]model.IndexEntry, error) {
	chart, err := loadChart(path)
	if err != nil {
		return nil, err
	}

	var res []model.IndexEntry
	for _, id := range util.GetSortedKeys(chart.Courses) {
		r, err := analysis.Analyse(chart, id)
		if err != nil {
			return nil, err
		}
		res = append(res, model.IndexEntry{
			FileNum:    fileNum,
			Path:       path,
			Title:      chart.Headers.Title,
			Course:     id,
			Level:      r.Timeline.Headers.Level,
			TotalCombo: r.Statistics.TotalCombo,
			Length:     r.Statistics.Length,
			MaxScore:   r.Summary.MaxScore,
			Density:    r.Summary.Density,
		})
	}
	return res, nil
}

// Index analyses the charts under dir and writes the entries to the index file.
func Index(dir string, maxNum int) ([]model.IndexEntry, error) {
	if err := util.EnsureOutputDir(); err != nil {
		return nil, err
	}
	paths, err := util.GatherAllTJAPaths(dir, maxNum)
	if err != nil {
		return nil, err
	}
	fileNumMap := file.CreateFileNumMap(paths)

	var mu sync.Mutex
	var entries []model.IndexEntry

	wg := sizedwaitgroup.New(util.Max(indexWorkers, 1))
	keys := util.GetSortedKeys(fileNumMap)
	for i, num := range keys {
		fmt.Printf("Processing %v of %v tja files\n", i+1, len(keys))
		wg.Add()
		go func(num uint32, path string) {
			defer wg.Done()
			res, err := indexFile(num, path)
			if err != nil {
				fmt.Printf("Skipping %v because: %v\n", path, err)
				return
			}
			mu.Lock()
			entries = append(entries, res...)
			mu.Unlock()
		}(num, fileNumMap[num])
	}
	wg.Wait()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FileNum != entries[j].FileNum {
			return entries[i].FileNum < entries[j].FileNum
		}
		return entries[i].Course < entries[j].Course
	})

	if err := util.CreateBinary(util.GetIndexPath(), entries); err != nil {
		return nil, err
	}
	return entries, nil
}
