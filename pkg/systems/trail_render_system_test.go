package systems

import (
	"math"
	"testing"

	"github.com/gonewx/banner/pkg/components"
	"github.com/gonewx/banner/pkg/ecs"
)

func TestTrailOpacity(t *testing.T) {
	tests := []struct {
		renderIndex int
		want        float32
	}{
		{0, 1.0},
		{1, 0.92},
		{5, 0.60},
		{10, 0.20},
		{11, 0.15}, // 1 - 0.88 = 0.12 < 下限
		{100, 0.15},
	}

	for _, tt := range tests {
		got := TrailOpacity(tt.renderIndex)
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("TrailOpacity(%d) = %v, want %v", tt.renderIndex, got, tt.want)
		}
	}
}

func TestStackOrder(t *testing.T) {
	if StackOrder(3, 5) != 8 {
		t.Errorf("StackOrder(3, 5) = %d, want 8", StackOrder(3, 5))
	}
	if StackOrder(0, 0) != 0 {
		t.Errorf("StackOrder(0, 0) = %d, want 0", StackOrder(0, 0))
	}
}

// TestCollectTrailEntries 渲染索引按插入顺序分配，绘制顺序按层叠键排序
func TestCollectTrailEntries(t *testing.T) {
	em := ecs.NewEntityManager()

	// 乱序创建三条轨迹（Seq 与创建顺序无关）
	add := func(seq, zIndex int) {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: float64(seq)})
		em.AddComponent(id, &components.FloatingImageComponent{
			Seq:    seq,
			ZIndex: zIndex,
			Src:    "x",
		})
	}
	add(2, 0)  // renderIndex 2, 层叠键 2
	add(0, 10) // renderIndex 0, 层叠键 10
	add(1, 4)  // renderIndex 1, 层叠键 5

	entries := collectTrailEntries(em)
	if len(entries) != 3 {
		t.Fatalf("条目数: got %d, want 3", len(entries))
	}

	// 渲染索引必须对应插入顺序
	for _, e := range entries {
		if e.renderIndex != e.img.Seq {
			t.Errorf("Seq %d 的渲染索引: got %d, want %d", e.img.Seq, e.renderIndex, e.img.Seq)
		}
	}

	// 绘制顺序按层叠键升序: 2 (seq2), 5 (seq1), 10 (seq0)
	wantSeqOrder := []int{2, 1, 0}
	for i, e := range entries {
		if e.img.Seq != wantSeqOrder[i] {
			t.Errorf("绘制顺序位置 %d: got Seq %d, want %d", i, e.img.Seq, wantSeqOrder[i])
		}
	}
}
