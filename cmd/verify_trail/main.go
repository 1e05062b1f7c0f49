// verify_trail 无头验证指针轨迹的生成、淘汰和清空行为
//
// 不创建窗口，直接驱动轨迹系统并按固定时间步模拟指针移动，
// 检查各阶段的轨迹数量和属性范围，全部通过输出 PASS。
//
// 用法:
//
//	go run ./cmd/verify_trail -seed 42 -verbose
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/banner/pkg/components"
	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/ecs"
	"github.com/gonewx/banner/pkg/systems"
)

var (
	seed    = flag.Int64("seed", 42, "随机种子（固定种子结果可复现）")
	verbose = flag.Bool("verbose", false, "显示每步的轨迹状态")
)

var images = []string{
	"placeholder:3498db:One:240x180",
	"placeholder:e74c3c:Two:240x180",
	"placeholder:2ecc71:Three:240x180",
}

const step = 1.0 / 60.0

var failed bool

func check(name string, ok bool, detail string) {
	if ok {
		fmt.Printf("PASS  %s\n", name)
	} else {
		fmt.Printf("FAIL  %s: %s\n", name, detail)
		failed = true
	}
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	em := ecs.NewEntityManager()
	trail := systems.NewPointerTrailSystem(em, images, rand.New(rand.NewSource(*seed)))

	advance := func(seconds float64) {
		for t := 0.0; t < seconds; t += step {
			trail.Update(step)
			em.RemoveMarkedEntities()
		}
	}

	// 阶段 1: 节流。连续每帧移动 1 秒，有效突发次数受 80ms 间隔限制
	for i := 0; i < 60; i++ {
		trail.HandlePointerMove(float64(100+i*5), 300)
		advance(step)
		if *verbose {
			log.Printf("[Verify] tick %d: trail=%d", i, trail.TrailLen())
		}
	}
	check("节流限制活动数量", trail.TrailLen() <= config.TrailMaxActive,
		fmt.Sprintf("trail=%d > %d", trail.TrailLen(), config.TrailMaxActive))

	// 阶段 2: 属性范围
	rangesOK := true
	detail := ""
	for _, id := range trail.TrailEntities() {
		img, ok := ecs.GetComponent[*components.FloatingImageComponent](em, id)
		if !ok {
			continue
		}
		if img.Rotation < -config.TrailMaxRotation || img.Rotation > config.TrailMaxRotation ||
			img.Scale < config.TrailScaleMin || img.Scale > config.TrailScaleMax ||
			img.ZIndex < 0 || img.ZIndex >= config.TrailZIndexRange {
			rangesOK = false
			detail = fmt.Sprintf("rotation=%.2f scale=%.2f zIndex=%d", img.Rotation, img.Scale, img.ZIndex)
		}
	}
	check("属性在允许范围内", rangesOK, detail)

	// 阶段 3: 停顿 500ms 后淘汰到保留数
	advance(config.TrailRetireDelay + step)
	check("停顿后淘汰", trail.TrailLen() <= config.TrailRetireKeep,
		fmt.Sprintf("trail=%d > %d", trail.TrailLen(), config.TrailRetireKeep))

	// 阶段 4: 指针离开 200ms 后清空
	trail.HandlePointerLeave()
	advance(config.TrailClearDelay + step)
	check("离开后清空", trail.TrailLen() == 0,
		fmt.Sprintf("trail=%d != 0", trail.TrailLen()))

	// 阶段 5: 触摸上限
	for i := 0; i < 10; i++ {
		trail.HandleTouchMove(float64(200+i*10), 200)
		advance(step)
	}
	check("触摸保留数", trail.TrailLen() <= config.TrailTouchKeep,
		fmt.Sprintf("trail=%d > %d", trail.TrailLen(), config.TrailTouchKeep))

	if failed {
		os.Exit(1)
	}
	fmt.Println("全部通过")
}
