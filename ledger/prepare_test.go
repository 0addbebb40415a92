package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRecords() []Record {
	return []Record{
		{Name: "张伟", Amount: 200, Type: "同事"},
		{Name: "李娜", Amount: 500, Type: "亲属", Remark: "代全家致贺"},
		{Name: "王强", Amount: 100, Type: "同事", Abolished: true},
		{Name: "赵敏", Amount: 300},
		{Name: "孙莉", Amount: 800, Type: "亲属"},
	}
}

func TestPrepareTotalsAndGroups(t *testing.T) {
	prep, err := Prepare(sampleRecords(), 2)
	if err != nil {
		t.Fatalf("整理失败: %v", err)
	}
	// 作废的王强不入合计与分组。
	if prep.GrandTotal != 1800 {
		t.Errorf("合计期望 1800，得到 %v", prep.GrandTotal)
	}
	want := []TypeGroup{
		{Type: "同事", Count: 1, Total: 200},
		{Type: "亲属", Count: 2, Total: 1300},
		{Type: "", Count: 1, Total: 300},
	}
	if diff := cmp.Diff(want, prep.Groups); diff != "" {
		t.Errorf("类目分组不符（-want +got）:\n%s", diff)
	}
}

func TestPrepareRemarkPositions(t *testing.T) {
	prep, err := Prepare(sampleRecords(), 2)
	if err != nil {
		t.Fatalf("整理失败: %v", err)
	}
	want := []RemarkEntry{
		{Name: "李娜", Position: "第 1 页 第 2 位", Remark: "代全家致贺"},
	}
	if diff := cmp.Diff(want, prep.Remarks); diff != "" {
		t.Errorf("备注条目不符（-want +got）:\n%s", diff)
	}
}

func TestPreparePagination(t *testing.T) {
	prep, err := Prepare(sampleRecords(), 2)
	if err != nil {
		t.Fatalf("整理失败: %v", err)
	}
	if prep.PageCount() != 3 {
		t.Fatalf("5 条每页 2 格应得 3 页，得到 %d", prep.PageCount())
	}
	if len(prep.Pages[2]) != 1 || prep.Pages[2][0].Name != "孙莉" {
		t.Errorf("末页应仅余孙莉: %+v", prep.Pages[2])
	}
}

func TestPageSubtotalSkipsAbolished(t *testing.T) {
	prep, _ := Prepare(sampleRecords(), 5)
	if got := PageSubtotal(prep.Pages[0]); got != 1800 {
		t.Errorf("页小计应剔除作废记录，得到 %v", got)
	}
}

func TestPrepareErrors(t *testing.T) {
	if _, err := Prepare(nil, 12); err == nil {
		t.Errorf("空记录应报错")
	}
	if _, err := Prepare(sampleRecords(), 0); err == nil {
		t.Errorf("非正格数应报错")
	}
}

// 作废记录的位次仍按原始下标推算，不因剔除而前移。
func TestPositionCountsAbolished(t *testing.T) {
	records := []Record{
		{Name: "甲", Amount: 1, Abolished: true},
		{Name: "乙", Amount: 1, Remark: "有言"},
	}
	prep, err := Prepare(records, 12)
	if err != nil {
		t.Fatalf("整理失败: %v", err)
	}
	if prep.Remarks[0].Position != "第 1 页 第 2 位" {
		t.Errorf("位次期望 第 1 页 第 2 位，得到 %q", prep.Remarks[0].Position)
	}
}
